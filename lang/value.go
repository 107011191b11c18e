package lang

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// ValueKind identifies which alternative of the closed [Value] sum type a
// given value holds.
type ValueKind int

const (
	KindInt        ValueKind = iota // int
	KindDec                         // dec
	KindStr                         // str
	KindPath                        // path
	KindBool                        // bool
	KindValueNil                    // nil
	KindNone                        // none
	KindSlice                       // slice
	KindPoint                       // point
	KindList                        // list
	KindMap                         // map
	KindWord                        // word
	KindVariable                    // variable
	KindExpression                  // expression
	KindBlock                       // block
)

// String returns the linecomment name of the kind (int, dec, str, ...).
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindDec:
		return "dec"
	case KindStr:
		return "str"
	case KindPath:
		return "path"
	case KindBool:
		return "bool"
	case KindValueNil:
		return "nil"
	case KindNone:
		return "none"
	case KindSlice:
		return "slice"
	case KindPoint:
		return "point"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindWord:
		return "word"
	case KindVariable:
		return "variable"
	case KindExpression:
		return "expression"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// SliceValue is the value payload for [KindSlice]: a Python-style
// start:stop:step range, each bound optional.
type SliceValue struct {
	Start, Stop, Step *big.Int
}

// PointValue is the value payload for [KindPoint]: a small fixed-arity
// tuple of arbitrary-precision decimals, accessed positionally (X/Y/Z).
type PointValue struct {
	Components []*big.Rat
}

// X returns the first component, or nil if the point is empty.
func (p PointValue) X() *big.Rat { return p.component(0) }

// Y returns the second component, or nil if the point has fewer than two.
func (p PointValue) Y() *big.Rat { return p.component(1) }

// Z returns the third component, or nil if the point has fewer than three.
func (p PointValue) Z() *big.Rat { return p.component(2) }

func (p PointValue) component(i int) *big.Rat {
	if i < 0 || i >= len(p.Components) {
		return nil
	}

	return p.Components[i]
}

// Expression is the value payload for [KindExpression]: an embedded
// expression body deferred for evaluation under a chosen evaluator,
// identified by its prefix (e.g. "py", "expr"). An empty Prefix selects
// the host's default evaluator.
type Expression struct {
	Prefix string
	Body   string
	Span   Span
}

// Block is the value payload for [KindBlock]: a sequence of command calls
// deferred for evaluation, e.g. the body of an `if`/`else` word or a
// stored procedure.
type Block struct {
	Calls []*CommandCall
	Span  Span
}

// Value is Shellsy's closed sum type. Exactly one of the typed fields
// below is meaningful for a given Kind; the rest are zero. Int/Dec keep
// their literal text in Raw, and Int/Rat are parsed from that text when the
// value is constructed; the parse is not deferred until a receiver needs a
// number.
type Value struct {
	Kind ValueKind

	Raw string // original literal text, kept for Int/Dec/Word/Variable

	Int   *big.Int
	Dec   *big.Rat
	Str   string
	Path  string
	Bool  bool
	Slice SliceValue
	Point PointValue
	List  []Value
	Map   map[string]Value
	Word  *Word

	Variable string // name to resolve against a scope

	Expr  *Expression
	Block *Block

	Span Span
}

// Nil is the singleton Nil value (an explicit, deliberate absence).
var Nil = Value{Kind: KindValueNil, Raw: "nil"}

// None is the singleton None value (an unset/undetermined absence,
// distinct from Nil the way Python's shellsy distinguishes them: Nil is
// spelled out by the user or bound to a flag that has no value, None is
// what a comment line evaluates to).
var None = Value{Kind: KindNone, Raw: "none"}

// NewBool constructs a Bool value.
func NewBool(b bool) Value {
	raw := "false"
	if b {
		raw = "true"
	}

	return Value{Kind: KindBool, Bool: b, Raw: raw}
}

// NewStr constructs a Str value.
func NewStr(s string) Value { return Value{Kind: KindStr, Str: s, Raw: s} }

// NewPath constructs a Path value, expanded is the post-expandenv text.
func NewPath(raw, expanded string) Value {
	return Value{Kind: KindPath, Path: expanded, Raw: raw}
}

// NewInt constructs an Int value from already-parsed big.Int, keeping raw
// text for round-trip formatting.
func NewInt(raw string, n *big.Int) Value {
	return Value{Kind: KindInt, Int: n, Raw: raw}
}

// NewDec constructs a Dec value from already-parsed big.Rat.
func NewDec(raw string, r *big.Rat) Value {
	return Value{Kind: KindDec, Dec: r, Raw: raw}
}

// NewWord constructs a Word value from a canonical *Word.
func NewWord(w *Word) Value { return Value{Kind: KindWord, Word: w, Raw: w.Name} }

// NewVariable constructs a deferred Variable value.
func NewVariable(name string) Value {
	return Value{Kind: KindVariable, Variable: name, Raw: "$" + name}
}

// NewList constructs a List value.
func NewList(items []Value) Value { return Value{Kind: KindList, List: items} }

// NewMap constructs a Map value.
func NewMap(m map[string]Value) Value { return Value{Kind: KindMap, Map: m} }

// NewExpression constructs a deferred Expression value.
func NewExpression(expr *Expression) Value {
	return Value{Kind: KindExpression, Expr: expr}
}

// NewBlock constructs a deferred Block value.
func NewBlock(b *Block) Value { return Value{Kind: KindBlock, Block: b} }

// IsDeferred reports whether the value is one of the three kinds that
// require a scope to resolve: Variable, Expression, Block.
func (v Value) IsDeferred() bool {
	switch v.Kind {
	case KindVariable, KindExpression, KindBlock:
		return true
	default:
		return false
	}
}

// Truthy implements Shellsy's truthiness rule used by conditional words:
// Nil, None, false, zero numbers, and empty strings/lists/maps are falsy;
// everything else is truthy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindValueNil, KindNone:
		return false
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int != nil && v.Int.Sign() != 0
	case KindDec:
		return v.Dec != nil && v.Dec.Sign() != 0
	case KindStr:
		return v.Str != ""
	case KindPath:
		return v.Path != ""
	case KindList:
		return len(v.List) != 0
	case KindMap:
		return len(v.Map) != 0
	default:
		return true
	}
}

// Equal reports structural equality between two values of the same Kind;
// values of different Kind are never equal.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}

	switch v.Kind {
	case KindInt:
		return v.Int != nil && o.Int != nil && v.Int.Cmp(o.Int) == 0
	case KindDec:
		return v.Dec != nil && o.Dec != nil && v.Dec.Cmp(o.Dec) == 0
	case KindStr:
		return v.Str == o.Str
	case KindPath:
		return v.Path == o.Path
	case KindBool:
		return v.Bool == o.Bool
	case KindValueNil, KindNone:
		return true
	case KindWord:
		return v.Word == o.Word
	case KindVariable:
		return v.Variable == o.Variable
	case KindList:
		if len(v.List) != len(o.List) {
			return false
		}

		for i := range v.List {
			if !v.List[i].Equal(o.List[i]) {
				return false
			}
		}

		return true
	case KindMap:
		if len(v.Map) != len(o.Map) {
			return false
		}

		for k, vv := range v.Map {
			ov, ok := o.Map[k]
			if !ok || !vv.Equal(ov) {
				return false
			}
		}

		return true
	default:
		return v.Raw == o.Raw
	}
}

// String renders the value the way it would be re-entered at a prompt,
// used both for debugging and as the default result formatter.
func (v Value) String() string {
	switch v.Kind {
	case KindInt, KindDec, KindWord:
		return v.Raw
	case KindStr:
		return fmt.Sprintf("%q", v.Str)
	case KindPath:
		return "/" + v.Raw + "/"
	case KindBool:
		return v.Raw
	case KindValueNil:
		return "nil"
	case KindNone:
		return "none"
	case KindVariable:
		return "$" + v.Variable
	case KindSlice:
		return formatSlice(v.Slice)
	case KindPoint:
		return formatPoint(v.Point)
	case KindList:
		parts := make([]string, len(v.List))
		for i, item := range v.List {
			parts[i] = item.String()
		}

		return "[" + strings.Join(parts, " ") + "]"
	case KindMap:
		if len(v.Map) == 0 {
			return "[-]"
		}

		keys := make([]string, 0, len(v.Map))
		for k := range v.Map {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		parts := make([]string, len(keys))

		for i, k := range keys {
			parts[i] = fmt.Sprintf("-%s %s", k, v.Map[k].String())
		}

		return "[" + strings.Join(parts, " ") + "]"
	case KindExpression:
		prefix := v.Expr.Prefix
		if prefix != "" {
			prefix += "#"
		}

		return "(" + prefix + v.Expr.Body + ")"
	case KindBlock:
		parts := make([]string, len(v.Block.Calls))
		for i, c := range v.Block.Calls {
			parts[i] = c.String()
		}

		return "{" + strings.Join(parts, "; ") + "}"
	default:
		return v.Raw
	}
}

func formatSlice(s SliceValue) string {
	part := func(n *big.Int) string {
		if n == nil {
			return ""
		}

		return n.String()
	}

	out := part(s.Start) + ":" + part(s.Stop)
	if s.Step != nil {
		out += ":" + part(s.Step)
	}

	return out
}

func formatPoint(p PointValue) string {
	parts := make([]string, len(p.Components))
	for i, c := range p.Components {
		parts[i] = c.RatString()
	}

	return strings.Join(parts, ",")
}

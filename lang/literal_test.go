package lang

import (
	"math/big"
	"testing"
)

func TestParseLiteral_Scalars(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind ValueKind
	}{
		{"true", "true", KindBool},
		{"false", "false", KindBool},
		{"nil", "nil", KindValueNil},
		{"none", "none", KindNone},
		{"int", "42", KindInt},
		{"negative int", "-7", KindInt},
		{"dec", "3.14", KindDec},
		{"single string", "'hi there'", KindStr},
		{"double string", `"hi\nthere"`, KindStr},
		{"path", "/tmp/x/", KindPath},
		{"variable", "$name", KindVariable},
		{"slice", "1:10:2", KindSlice},
		{"point", "1.0,2.0", KindPoint},
		{"expression", "(py#1+1)", KindExpression},
		{"bare word", "hello", KindStr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseLiteral(tt.raw, Span{Text: tt.raw})
			if err != nil {
				t.Fatalf("ParseLiteral(%q) error: %v", tt.raw, err)
			}

			if v.Kind != tt.kind {
				t.Errorf("ParseLiteral(%q).Kind = %v, want %v", tt.raw, v.Kind, tt.kind)
			}
		})
	}
}

func TestParseLiteral_Word(t *testing.T) {
	v, err := ParseLiteral("as", Span{Text: "as"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Kind != KindWord {
		t.Fatalf("expected Word kind, got %v", v.Kind)
	}
}

func TestParseLiteral_List(t *testing.T) {
	v, err := ParseLiteral("[1 2 3]", Span{Text: "[1 2 3]"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Kind != KindList || len(v.List) != 3 {
		t.Fatalf("expected 3-element list, got %+v", v)
	}
}

func TestParseLiteral_EmptyList(t *testing.T) {
	v, err := ParseLiteral("[]", Span{Text: "[]"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Kind != KindList || len(v.List) != 0 {
		t.Fatalf("expected empty list, got %+v", v)
	}
}

func TestParseLiteral_EmptyMap(t *testing.T) {
	v, err := ParseLiteral("[-]", Span{Text: "[-]"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Kind != KindMap || len(v.Map) != 0 {
		t.Fatalf("expected empty map, got %+v", v)
	}
}

func TestParseLiteral_Map(t *testing.T) {
	v, err := ParseLiteral("[-a 1 -b 2]", Span{Text: "[-a 1 -b 2]"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Kind != KindMap {
		t.Fatalf("expected Map kind, got %v", v.Kind)
	}

	if !v.Map["a"].Equal(NewInt("1", big.NewInt(1))) {
		t.Errorf("unexpected value for key a: %+v", v.Map["a"])
	}
}

// TestParseLiteral_NestedListSpec exercises spec.md §8 scenario 4 verbatim:
// echo [1 2 [3] [] [-] [-a 3 -b 5]].
func TestParseLiteral_NestedListSpec(t *testing.T) {
	raw := "[1 2 [3] [] [-] [-a 3 -b 5]]"

	v, err := ParseLiteral(raw, Span{Text: raw})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Kind != KindList || len(v.List) != 6 {
		t.Fatalf("expected 6-element list, got %+v", v)
	}

	if !v.List[0].Equal(NewInt("1", big.NewInt(1))) || !v.List[1].Equal(NewInt("2", big.NewInt(2))) {
		t.Errorf("unexpected leading scalars: %+v, %+v", v.List[0], v.List[1])
	}

	if v.List[2].Kind != KindList || len(v.List[2].List) != 1 {
		t.Errorf("expected [3] to parse as a 1-element list, got %+v", v.List[2])
	}

	if v.List[3].Kind != KindList || len(v.List[3].List) != 0 {
		t.Errorf("expected [] to parse as an empty list, got %+v", v.List[3])
	}

	if v.List[4].Kind != KindMap || len(v.List[4].Map) != 0 {
		t.Errorf("expected [-] to parse as an empty map, got %+v", v.List[4])
	}

	m := v.List[5]
	if m.Kind != KindMap {
		t.Fatalf("expected [-a 3 -b 5] to parse as a map, got %+v", m)
	}

	if !m.Map["a"].Equal(NewInt("3", big.NewInt(3))) || !m.Map["b"].Equal(NewInt("5", big.NewInt(5))) {
		t.Errorf("unexpected map contents: %+v", m.Map)
	}
}

// TestValue_String_ListMapRoundTrip covers spec.md §8 invariant 1 for the
// compound literal kinds: formatting a parsed List/Map must re-parse to a
// structurally equal Value.
func TestValue_String_ListMapRoundTrip(t *testing.T) {
	raw := "[1 2 [3] [] [-] [-a 3 -b 5]]"

	v, err := ParseLiteral(raw, Span{Text: raw})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	formatted := v.String()

	reparsed, err := ParseLiteral(formatted, Span{Text: formatted})
	if err != nil {
		t.Fatalf("ParseLiteral(%q) error: %v", formatted, err)
	}

	if !v.Equal(reparsed) {
		t.Fatalf("round-trip mismatch: %q -> %q -> %+v, want %+v", raw, formatted, reparsed, v)
	}
}

func TestParseLiteral_ExpressionDefaultPrefix(t *testing.T) {
	v, err := ParseLiteral("(1 + 1)", Span{Text: "(1 + 1)"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Kind != KindExpression || v.Expr.Prefix != "" {
		t.Fatalf("expected default-prefix expression, got %+v", v)
	}
}

func TestParseLiteral_Block(t *testing.T) {
	v, err := ParseLiteral("{echo hi; echo bye}", Span{Text: "{echo hi; echo bye}"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Kind != KindBlock || len(v.Block.Calls) != 2 {
		t.Fatalf("expected 2-call block, got %+v", v)
	}
}

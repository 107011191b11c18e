package interp

import "github.com/ken-morel/shellsy/lang"

// resultVar is the name under which the most recent result is exposed to
// subsequent lines, e.g. `echo $_`.
const resultVar = "_"

// Scope is a chain of variable bindings. A Block literal evaluates its
// calls in a child Scope so that assignments inside the block do not leak
// into the caller, while lookups still see the caller's variables.
//
// Grounded on original_source/shellsy/interpreter.py's S_Interpreter.scope.
type Scope struct {
	parent *Scope
	vars   map[string]lang.Value
}

// NewScope constructs a root scope with no parent.
func NewScope() *Scope {
	return &Scope{vars: map[string]lang.Value{}}
}

// Child constructs a nested scope whose lookups fall back to s.
func (s *Scope) Child() *Scope {
	return &Scope{parent: s, vars: map[string]lang.Value{}}
}

// Get looks up name, walking up the parent chain.
func (s *Scope) Get(name string) (lang.Value, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[name]; ok {
			return v, true
		}
	}

	return lang.Value{}, false
}

// Set binds name to v in s directly (not in a parent scope).
func (s *Scope) Set(name string, v lang.Value) {
	s.vars[name] = v
}

// SetResult records v as the value of the special "_" variable.
func (s *Scope) SetResult(v lang.Value) {
	s.Set(resultVar, v)
}

// All returns every variable visible from s, walking from the outermost
// parent down to s so a child's binding overrides its parent's. Used to
// build the environment handed to an embedded-expression evaluator (see
// expr.go), mirroring how a shell exposes its whole variable table to an
// embedded interpreter.
func (s *Scope) All() map[string]lang.Value {
	var chain []*Scope
	for sc := s; sc != nil; sc = sc.parent {
		chain = append(chain, sc)
	}

	out := make(map[string]lang.Value)
	for i := len(chain) - 1; i >= 0; i-- {
		for k, v := range chain[i].vars {
			out[k] = v
		}
	}

	return out
}

// outVar is the name under which the running history of results is exposed
// as a List variable, e.g. `echo $out`.
const outVar = "out"

// Context is one interactive session's state: the root variable [Scope]
// plus the ordered history of results. Grounded on
// original_source/shellsy/interpreter.py's S_Interpreter, which keeps
// both on the same object. Context's lifetime is the lifetime of the
// session; it is never reset mid-session and is discarded (not reused)
// between sessions.
type Context struct {
	Root  *Scope
	Out   []lang.Value
	Stack lang.Stack
}

// NewContext constructs an empty session Context with a fresh root Scope.
func NewContext() *Context {
	return &Context{Root: NewScope()}
}

// Record appends v to Out and updates both the "_" and "out" session
// variables, per §4.8 step 6 of the specification: "the result is stored
// in `_` and `out[N]` in session context."
func (c *Context) Record(v lang.Value) {
	c.Root.SetResult(v)
	c.Out = append(c.Out, v)
	c.Root.Set(outVar, lang.NewList(c.Out))
}

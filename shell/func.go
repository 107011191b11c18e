package shell

import (
	"context"
	"fmt"
	"reflect"

	"github.com/ken-morel/shellsy/lang"
)

// tag is the struct tag key used by [Func] to read a parameter's Shellsy
// name, default, and mode off a Go struct field, when they differ from the
// field's own name/zero value.
const tag = "shellsy"

// Func builds an [Overload] by reflecting over a Go function of the shape
//
//	func(ctx context.Context, args ArgsStruct) (lang.Value, error)
//
// where ArgsStruct is a struct whose exported fields become the overload's
// Params: field name (or its `shellsy:"name"` tag) becomes Param.Name, and
// the Go field type becomes Param.Kind. This is the idiomatic-Go analogue
// of original_source/shellsy/args.py's CommandParameters.from_function,
// which built parameters from a Python function's introspected signature;
// Go has no runtime parameter-name introspection, so the struct's field
// names play that role instead. The reflection walk itself (NumIn/In,
// struct field iteration) is grounded on
// ardnew-aenv/cli/cmd/repl/signature.go's use of reflect over Go function
// values.
func Func[T any](fn func(ctx context.Context, args T) (lang.Value, error)) Overload {
	var zero T

	t := reflect.TypeOf(zero)
	if t.Kind() != reflect.Struct {
		panic("shell.Func: args type must be a struct")
	}

	params := make([]Param, 0, t.NumField())

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name := f.Name
		if tagged, ok := f.Tag.Lookup(tag); ok && tagged != "" {
			name = tagged
		}

		params = append(params, Param{
			Name:    name,
			Kind:    kindOf(f.Type),
			HasKind: f.Type.Kind() != reflect.Interface,
			Mode:    ModeEither,
		})
	}

	handler := func(ctx context.Context, bound map[string]lang.Value) (lang.Value, error) {
		argsVal := reflect.New(t).Elem()

		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}

			name := f.Name
			if tagged, ok := f.Tag.Lookup(tag); ok && tagged != "" {
				name = tagged
			}

			v, ok := bound[name]
			if !ok {
				continue
			}

			set, err := assign(argsVal.Field(i), v)
			if err != nil {
				return lang.Value{}, fmt.Errorf("field %s: %w", name, err)
			}

			if set {
				continue
			}
		}

		return fn(ctx, argsVal.Interface().(T))
	}

	return Overload{Params: params, Handler: handler}
}

// kindOf maps a Go reflect.Type to the lang.ValueKind a bound Value must
// have to be assignable to a field of that type.
func kindOf(t reflect.Type) lang.ValueKind {
	switch t.Kind() {
	case reflect.String:
		return lang.KindStr
	case reflect.Bool:
		return lang.KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return lang.KindInt
	case reflect.Float32, reflect.Float64:
		return lang.KindDec
	case reflect.Slice:
		return lang.KindList
	case reflect.Map:
		return lang.KindMap
	default:
		return lang.KindValueNil // sentinel meaning "any" for interface{} fields
	}
}

// assign coerces v into dst, a field of the args struct. It reports
// (true, nil) on success.
func assign(dst reflect.Value, v lang.Value) (bool, error) {
	switch dst.Kind() {
	case reflect.String:
		switch v.Kind {
		case lang.KindStr:
			dst.SetString(v.Str)
		case lang.KindPath:
			dst.SetString(v.Path)
		default:
			dst.SetString(v.String())
		}

		return true, nil
	case reflect.Bool:
		dst.SetBool(v.Truthy())

		return true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Kind != lang.KindInt || v.Int == nil {
			return false, fmt.Errorf("expected int, got %s", v.Kind)
		}

		dst.SetInt(v.Int.Int64())

		return true, nil
	case reflect.Float32, reflect.Float64:
		if v.Kind != lang.KindDec || v.Dec == nil {
			return false, fmt.Errorf("expected dec, got %s", v.Kind)
		}

		f, _ := v.Dec.Float64()
		dst.SetFloat(f)

		return true, nil
	case reflect.Interface:
		dst.Set(reflect.ValueOf(v))

		return true, nil
	default:
		return false, nil
	}
}

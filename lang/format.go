package lang

import (
	"github.com/goccy/go-yaml"
)

// OutputFormat selects how [FormatValue] renders a result.
type OutputFormat int

const (
	// FormatNative renders a value the way it would be re-entered at a
	// prompt (Value.String).
	FormatNative OutputFormat = iota
	// FormatYAML renders List/Map values structurally via goccy/go-yaml;
	// scalar values fall back to FormatNative.
	FormatYAML
)

// FormatValue renders v according to format. Grounded on
// ardnew-aenv/cli/cmd/fmt.go's format-selectable output subcommand, with
// the YAML path relocated from whole-manifest formatting to single-value
// formatting.
func FormatValue(v Value, format OutputFormat) (string, error) {
	if format != FormatYAML {
		return v.String(), nil
	}

	switch v.Kind {
	case KindList, KindMap:
		out, err := yaml.Marshal(toPlain(v))
		if err != nil {
			return "", NewError(KindHandlerError, "yaml marshal failed").Wrap(err)
		}

		return string(out), nil
	default:
		return v.String(), nil
	}
}

// toPlain converts a Value into plain Go data (map[string]any, []any,
// string, bool, or a numeric string) suitable for yaml.Marshal.
func toPlain(v Value) any {
	switch v.Kind {
	case KindList:
		out := make([]any, len(v.List))
		for i, e := range v.List {
			out[i] = toPlain(e)
		}

		return out
	case KindMap:
		out := make(map[string]any, len(v.Map))
		for k, e := range v.Map {
			out[k] = toPlain(e)
		}

		return out
	case KindStr:
		return v.Str
	case KindBool:
		return v.Bool
	case KindValueNil, KindNone:
		return nil
	default:
		return v.String()
	}
}

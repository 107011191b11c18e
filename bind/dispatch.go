package bind

import (
	"context"
	"errors"

	"github.com/ken-morel/shellsy/lang"
	"github.com/ken-morel/shellsy/shell"
)

// Dispatch tries each of cmd's overloads in declaration order, invoking
// the first one that binds successfully. If every overload reports
// WrongShape, Dispatch returns a NoMatchingOverload [lang.ShellError]
// aggregating each attempt's reason.
func Dispatch(
	ctx context.Context,
	cmd *shell.Command,
	call *lang.CommandCall,
) (lang.Value, error) {
	var attempts []error

	for _, overload := range cmd.Overload {
		result := Bind(overload, call)

		switch result.Outcome {
		case Bound:
			v, err := overload.Handler(ctx, result.Values)
			if err != nil {
				var shellErr *lang.ShellError
				if se, ok := err.(*lang.ShellError); ok {
					shellErr = se
				} else {
					shellErr = lang.NewError(lang.KindHandlerError, "command %q failed", cmd.Name).Wrap(err)
				}

				return lang.Value{}, shellErr
			}

			return v, nil
		case WrongShape:
			attempts = append(attempts, result.Err)

			continue
		case Fatal:
			return lang.Value{}, result.Err
		}
	}

	if len(attempts) > 0 {
		return lang.Value{}, lang.NewError(
			lang.KindNoMatchingOverload,
			"no overload of %q matches the given arguments", cmd.Name,
		).Wrap(errors.Join(attempts...))
	}

	return lang.Value{}, lang.NewError(
		lang.KindNoMatchingOverload, "%q has no overloads", cmd.Name,
	)
}

package cli

import (
	"errors"
	"fmt"

	"rpa-roi/service"
)

// CLIError wraps errors with a user-facing message and an actionable hint.
type CLIError struct {
	Message string
	Hint    string
	Err     error
}

func (e *CLIError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Hint != "" {
		msg += "\nhint: " + e.Hint
	}
	return msg
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// MapError converts known errors into CLIErrors with hints. Unmapped errors
// are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, service.ErrUnknownScenario):
		return &CLIError{
			Message: "unknown scenario",
			Hint:    "use one of conservative, standard, optimistic (see 'roi presets')",
			Err:     err,
		}
	case errors.Is(err, service.ErrUnknownScale):
		return &CLIError{
			Message: "unknown scale",
			Hint:    "use one of small, medium, large (see 'roi presets')",
			Err:     err,
		}
	}
	return err
}

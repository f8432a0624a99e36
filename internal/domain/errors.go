package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrActionNotFound               = errors.New("action not found")
	ErrCompositeActionMisconfigured = errors.New("composite action misconfigured")
	ErrEventNameTaken               = errors.New("event name already taken")
	ErrIllegalTransition            = errors.New("illegal event status transition")
	ErrAttendanceNotAllowed         = errors.New("attendance can only be recorded while the event is active")
	ErrAlreadyAttended              = errors.New("attendance already recorded for this day")
	ErrNoEligibleRecipients         = errors.New("no members attended every day of the event")
	ErrEventNotClosed               = errors.New("certificates can only be sent for a closed event")
)

// ValidationError reports a structural problem in submitted data. It is
// always recoverable by fixing the input and never partially applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ValidationErrors collects every ValidationError found in one pass.
type ValidationErrors []*ValidationError

func (es ValidationErrors) Error() string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// ErrOrNil returns nil for an empty set so callers can return it directly.
func (es ValidationErrors) ErrOrNil() error {
	if len(es) == 0 {
		return nil
	}
	return es
}

// BusinessRuleError wraps one of the sentinel rule violations above with a
// human readable reason.
type BusinessRuleError struct {
	Rule   error
	Reason string
}

func (e *BusinessRuleError) Error() string {
	if e.Reason == "" {
		return e.Rule.Error()
	}
	return fmt.Sprintf("%v: %s", e.Rule, e.Reason)
}

func (e *BusinessRuleError) Unwrap() error {
	return e.Rule
}

func NewBusinessRuleError(rule error, format string, args ...any) *BusinessRuleError {
	return &BusinessRuleError{Rule: rule, Reason: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var single *ValidationError
	var many ValidationErrors
	return errors.As(err, &single) || errors.As(err, &many)
}

func IsBusinessRuleError(err error) bool {
	var target *BusinessRuleError
	return errors.As(err, &target)
}

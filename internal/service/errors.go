package service

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/repository"
)

var (
	ErrEventNotFound      = repository.ErrEventNotFound
	ErrLogNotFound        = repository.ErrLogNotFound
	ErrMemberNotFound     = repository.ErrMemberNotFound
	ErrDepartmentNotFound = repository.ErrDepartmentNotFound
	ErrUnknownTarget      = repository.ErrUnknownTarget
	ErrDuplicateTarget    = repository.ErrDuplicateTarget
)

// OperationError is one failed operation of a batch.
type OperationError struct {
	Op    string `json:"op"`
	LogID *uint  `json:"log_id,omitempty"`
	Err   error  `json:"-"`
}

func (e OperationError) Error() string {
	if e.LogID != nil {
		return fmt.Sprintf("%s log %d: %v", e.Op, *e.LogID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// PartialFailure reports a batch of independent operations where some
// failed. Operations that succeeded are kept.
type PartialFailure struct {
	Total  int
	Failed []OperationError
}

func (e *PartialFailure) Succeeded() int {
	return e.Total - len(e.Failed)
}

func (e *PartialFailure) Error() string {
	msgs := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		msgs = append(msgs, f.Error())
	}
	return fmt.Sprintf("%d of %d succeeded: %s", e.Succeeded(), e.Total, strings.Join(msgs, "; "))
}

func (e *PartialFailure) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, f := range e.Failed {
		errs = append(errs, f.Err)
	}
	return errs
}

// NetworkError is a transport failure talking to the database or the
// broker. Callers may retry; nothing here does.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// classify wraps err in a NetworkError when it was caused by the transport.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	var amqpErr *amqp.Error
	if errors.As(err, &netErr) || errors.As(err, &amqpErr) ||
		errors.Is(err, driver.ErrBadConn) || errors.Is(err, amqp.ErrClosed) {
		return &NetworkError{Op: op, Err: err}
	}

	return fmt.Errorf("%s -> %w", op, err)
}

func IsNetworkError(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

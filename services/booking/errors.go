package booking

import (
	"errors"
	"fmt"
)

// FlowError marks a blocked transition or invalid input in the booking
// flow. Handlers map it to a 4xx response instead of a server error.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewFlowError(code, msg string) error {
	return &FlowError{
		Code:    code,
		Message: msg,
	}
}

// IsFlowError reports whether err is a FlowError.
func IsFlowError(err error) bool {
	var fe *FlowError
	return errors.As(err, &fe)
}

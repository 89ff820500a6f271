package types

import "fmt"

// CustomError carries an HTTP status code and an error type tag through the
// Fiber error handler so failures render in the standard JSON envelope.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

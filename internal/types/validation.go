package types

import (
	"fmt"
	"strings"
)

// ValidationError reports every missing or malformed required field of a
// submitted form at once, mirroring how the app surfaced the full list to
// the user instead of failing on the first field.
type ValidationError struct {
	Fields []string `json:"fields"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid required fields: %s", strings.Join(e.Fields, ", "))
}

// Add appends a field name to the error. Returns the receiver so callers
// can build the error while walking the form.
func (e *ValidationError) Add(field string) *ValidationError {
	e.Fields = append(e.Fields, field)
	return e
}

// OrNil returns nil when no fields were recorded, otherwise the error.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

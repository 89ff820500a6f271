package forms

import "time"

// displayDate is the date format every list renders, e.g. "Jan 2, 2006".
const displayDate = "Jan 2, 2006"

// isoDate is the wire format of HTML date inputs.
const isoDate = "2006-01-02"

// NormalizeDate rewrites an ISO date input into display form. Anything
// that is not an ISO date passes through unchanged.
func NormalizeDate(s string) string {
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return s
	}
	return t.Format(displayDate)
}

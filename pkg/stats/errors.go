package stats

import "fmt"

// LoadError reports an input file that could not be turned into observations.
// Line is the 1-based file line of a CSV record, or the sheet row of a
// spreadsheet, and zero when the failure is not tied to a row.
type LoadError struct {
	Path   string
	Column string
	Line   int
	Err    error
}

func (e *LoadError) Error() string {
	msg := "loading " + e.Path
	if e.Line > 0 {
		msg += fmt.Sprintf(" line %d", e.Line)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" column %q", e.Column)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SchemaViolation reports a (country, year) pair that occurs more than once.
type SchemaViolation struct {
	Country string
	Year    int
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("duplicate observation for %q in %d", e.Country, e.Year)
}

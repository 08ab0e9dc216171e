package route

import "fmt"

// SchemaError indicates an input table is missing a required column.
type SchemaError struct {
	Source string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.Source, e.Column)
}

// ParseError indicates a cell could not be parsed as a floating-point number.
type ParseError struct {
	Source string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d: column %q: cannot parse %q as float", e.Source, e.Line, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DataError indicates a well-formed table contained no data rows.
type DataError struct {
	Source string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s: no data found", e.Source)
}

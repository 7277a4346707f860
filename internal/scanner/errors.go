package scanner

import "fmt"

// UnrecognizedInputError reports a character no classifier matched. The
// error is fatal to the scan: no token is produced for the position and
// scanning cannot continue past it.
type UnrecognizedInputError struct {
	Pos  Position
	Char byte
}

func (e *UnrecognizedInputError) Error() string {
	return fmt.Sprintf("unrecognized input %q at line %d, column %d",
		e.Char, e.Pos.Line+1, e.Pos.Column+1)
}

// UnterminatedScalarError reports a quoted scalar whose closing quote never
// arrived before end of input.
type UnterminatedScalarError struct {
	Pos Position
}

func (e *UnterminatedScalarError) Error() string {
	return fmt.Sprintf("unterminated quoted scalar starting at line %d, column %d",
		e.Pos.Line+1, e.Pos.Column+1)
}

package eval

import "fmt"

// InvalidVariableNameError reports an identifier that is empty, too long,
// or contains characters other than letters, digits and underscores.
type InvalidVariableNameError struct {
	Name      string
	MaxLength int
}

func (e *InvalidVariableNameError) Error() string {
	return fmt.Sprintf("invalid variable name %q: names must be non-empty, alphanumeric or underscore, and at most %d characters",
		e.Name, e.MaxLength)
}

// TooManyVariablesError reports an expression whose distinct variable
// count exceeds the admission limit.
type TooManyVariablesError struct {
	Count int
	Max   int
}

func (e *TooManyVariablesError) Error() string {
	return fmt.Sprintf("expression has too many variables (%d > %d)", e.Count, e.Max)
}

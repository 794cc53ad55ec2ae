package controller

// EmptyInputMessage is shown when the input holds only whitespace.
const EmptyInputMessage = "Please enter some text to analyze"

// ValidationError is an input problem caught before any request is sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var ErrEmptyInput = &ValidationError{Message: EmptyInputMessage}

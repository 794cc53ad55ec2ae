package models

// ErrorTitle is the heading of every error panel.
const ErrorTitle = "Error"

// ErrorInfo is what the error panel shows.
type ErrorInfo struct {
	Title   string
	Message string
}

// NewErrorInfo builds the error panel content for a user-facing message.
func NewErrorInfo(message string) ErrorInfo {
	return ErrorInfo{Title: ErrorTitle, Message: message}
}

package errors

import "fmt"

// Category groups errors by the subsystem they originate from.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryLive   Category = "live"
	CategoryRender Category = "render"
)

// SiteError is a structured error with a category and an optional fix
// suggestion, surfaced by the CLI when startup fails.
type SiteError struct {
	// Category is the originating subsystem.
	Category Category

	// Message is a short description of the error.
	Message string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *SiteError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *SiteError) WithSuggestion(s string) *SiteError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *SiteError) Wrap(err error) *SiteError {
	e.Wrapped = err
	return e
}

// Newf creates a SiteError with a formatted message.
func Newf(category Category, format string, args ...any) *SiteError {
	return &SiteError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

package util

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors used throughout gridsheet
var (
	ErrUnsupportedFormat = errors.New("unsupported sheet file format")
	ErrEmptySheet        = errors.New("sheet has no columns")
	ErrWriteQuery        = errors.New("write statements are not allowed")
	ErrNoDatabaseURL     = errors.New("no database URL configured")
	ErrUnknownConfigKey  = errors.New("unknown config key")
	ErrInvalidTimeout    = errors.New("invalid query timeout")
)

// SheetError is a structured error with context and suggestions
type SheetError struct {
	Title       string   // Short error title
	Message     string   // Detailed message
	Context     string   // What was being attempted
	Causes      []string // Possible causes
	Suggestions []string // Actionable suggestions with commands
	Err         error    // Wrapped error
}

func (e *SheetError) Error() string {
	return e.Title
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// Format returns a nicely formatted error message
func (e *SheetError) Format() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error: %s\n", e.Title))

	if e.Message != "" {
		sb.WriteString(fmt.Sprintf("\n  %s\n", e.Message))
	}
	if e.Context != "" {
		sb.WriteString(fmt.Sprintf("\n  %s\n", e.Context))
	}

	if len(e.Causes) > 0 {
		sb.WriteString("\n  Possible causes:\n")
		for _, cause := range e.Causes {
			sb.WriteString(fmt.Sprintf("    • %s\n", cause))
		}
	}

	if len(e.Suggestions) > 0 {
		sb.WriteString("\n  Try:\n")
		for _, sug := range e.Suggestions {
			sb.WriteString(fmt.Sprintf("    $ %s\n", sug))
		}
	}

	return sb.String()
}

// NewError creates a new SheetError
func NewError(title string) *SheetError {
	return &SheetError{Title: title}
}

// WithMessage adds a detailed message
func (e *SheetError) WithMessage(msg string) *SheetError {
	e.Message = msg
	return e
}

// WithContext adds context about what was being attempted
func (e *SheetError) WithContext(ctx string) *SheetError {
	e.Context = ctx
	return e
}

// WithCause adds a possible cause
func (e *SheetError) WithCause(cause string) *SheetError {
	e.Causes = append(e.Causes, cause)
	return e
}

// WithCauses adds multiple possible causes
func (e *SheetError) WithCauses(causes ...string) *SheetError {
	e.Causes = append(e.Causes, causes...)
	return e
}

// WithSuggestion adds an actionable suggestion
func (e *SheetError) WithSuggestion(sug string) *SheetError {
	e.Suggestions = append(e.Suggestions, sug)
	return e
}

// WithSuggestions adds multiple suggestions
func (e *SheetError) WithSuggestions(sugs ...string) *SheetError {
	e.Suggestions = append(e.Suggestions, sugs...)
	return e
}

// Wrap wraps an underlying error
func (e *SheetError) Wrap(err error) *SheetError {
	e.Err = err
	return e
}

// ══════════════════════════════════════════════════════════════════════════
// Pre-built error constructors for common cases
// ══════════════════════════════════════════════════════════════════════════

// SheetFileError returns a structured error for an unreadable sheet file
func SheetFileError(path string, err error) *SheetError {
	return NewError("Cannot load sheet file").
		WithContext(path).
		WithCauses(
			"The file does not exist or is not readable",
			"The file is not valid TOML or YAML",
			"The file declares no columns",
		).
		WithSuggestions(
			"gridsheet open                 # Open the built-in sample sheet",
			"gridsheet open sheet.toml      # Open a TOML sheet",
		).
		Wrap(err)
}

// UnsupportedFormatError returns a structured error for an unknown extension
func UnsupportedFormatError(path string) *SheetError {
	return NewError("Unsupported sheet file format").
		WithContext(path).
		WithMessage("Sheet files must end in .toml, .yaml or .yml").
		Wrap(ErrUnsupportedFormat)
}

// DatabaseConnectionError returns a structured error for DB connection issues
func DatabaseConnectionError(url string, err error) *SheetError {
	return NewError("Cannot connect to database").
		WithContext(RedactURL(url)).
		WithCauses(
			"Database server is not running",
			"Invalid connection credentials",
			"Network connectivity issues",
			"Database does not exist",
		).
		WithSuggestions(
			"gridsheet sql --url postgres://user@host/db \"select 1\"",
			"gridsheet config sql.url postgres://user@host/db",
		).
		Wrap(err)
}

// NoDatabaseURLError returns a structured error when no URL is available
func NoDatabaseURLError() *SheetError {
	return NewError("No database URL").
		WithMessage("Pass --url, set GRIDSHEET_SQL_URL, or configure sql.url").
		WithSuggestions(
			"gridsheet config sql.url postgres://user@host/db",
		).
		Wrap(ErrNoDatabaseURL)
}

// WriteQueryError returns a structured error for refused write statements
func WriteQueryError(query string) *SheetError {
	return NewError("Write statements are not allowed").
		WithContext(query).
		WithMessage("gridsheet only displays query results; use SELECT").
		Wrap(ErrWriteQuery)
}

// InvalidTimeoutError returns a structured error for a query timeout below
// one second
func InvalidTimeoutError(seconds int) *SheetError {
	return NewError(fmt.Sprintf("Invalid timeout: %d", seconds)).
		WithMessage("The query timeout must be at least 1 second").
		WithSuggestion("gridsheet sql --timeout 30 \"SELECT ...\"").
		Wrap(ErrInvalidTimeout)
}

// UnknownConfigKeyError returns a structured error for a config key that
// does not exist
func UnknownConfigKeyError(key string) *SheetError {
	return NewError(fmt.Sprintf("Unknown config key: %s", key)).
		WithSuggestion("gridsheet config --list").
		Wrap(ErrUnknownConfigKey)
}

// MissingArgumentError returns an error for missing required argument
func MissingArgumentError(argName, example string) *SheetError {
	e := NewError(fmt.Sprintf("Missing required argument: <%s>", argName))
	if example != "" {
		e.WithSuggestion(example)
	}
	return e
}

// RedactURL hides the password of a connection URL for display.
func RedactURL(url string) string {
	scheme := strings.Index(url, "://")
	at := strings.LastIndex(url, "@")
	if scheme < 0 || at < scheme {
		return url
	}
	creds := url[scheme+3 : at]
	if i := strings.Index(creds, ":"); i >= 0 {
		return url[:scheme+3] + creds[:i] + ":***" + url[at:]
	}
	return url
}

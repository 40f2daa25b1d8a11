package typedesc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode identifies a class of type-name parse failure.
type ErrorCode string

const (
	// ErrUnknownKeyword indicates the name does not start with a known type keyword.
	ErrUnknownKeyword ErrorCode = "TD100"
	// ErrMalformedArray indicates an array suffix that is not [N] or [].
	ErrMalformedArray ErrorCode = "TD101"
	// ErrBadQualifier indicates a ':' not followed by a base type keyword.
	ErrBadQualifier ErrorCode = "TD102"
	// ErrTrailingInput indicates text after an otherwise complete name.
	ErrTrailingInput ErrorCode = "TD103"
	// ErrFixedLengthArray indicates an array suffix on a keyword that already has a length.
	ErrFixedLengthArray ErrorCode = "TD104"
	// ErrArrayLength indicates an array length that does not fit in 32 bits.
	ErrArrayLength ErrorCode = "TD105"
)

// ParseError describes why a type name could not be parsed.
type ParseError struct {
	Code       ErrorCode `json:"code"`
	Input      string    `json:"input"`
	Offset     int       `json:"offset"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion,omitempty"`
}

func newParseError(code ErrorCode, input string, offset int, msg string) *ParseError {
	return &ParseError{Code: code, Input: input, Offset: offset, Message: msg}
}

// Error implements the error interface
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %s (at offset %d in %q)", e.Code, e.Message, e.Offset, e.Input)
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; did you mean %q?", e.Suggestion)
	}
	return msg
}

// Format returns a multi-line message with a caret under the failing offset.
func (e *ParseError) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "ERROR [%s] %s\n", e.Code, e.Message)
	fmt.Fprintf(&b, "  %s\n", e.Input)
	fmt.Fprintf(&b, "  %s^\n", strings.Repeat(" ", e.Offset))

	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  Suggestion: %s\n", e.Suggestion)
	}

	return b.String()
}

// ToJSON returns the error as indented JSON.
func (e *ParseError) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal parse error: %w", err)
	}
	return string(bytes), nil
}

package agent

import (
	"encoding/json"
	"fmt"
)

// MissingArgError reports a required tool argument that was absent or empty.
type MissingArgError struct {
	Arg string
}

// Error implements the error interface.
func (e *MissingArgError) Error() string {
	return fmt.Sprintf("missing required argument %q", e.Arg)
}

// MalformedArgsError reports an argument payload that parsed as JSON but did
// not match the tool's expected shape.
type MalformedArgsError struct {
	Err error
}

// Error implements the error interface.
func (e *MalformedArgsError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *MalformedArgsError) Unwrap() error {
	return e.Err
}

// DecodeArgs unmarshals a tool call's raw argument payload into v. An empty or
// unparsable payload decodes as an empty argument set, so required-field checks
// report missing arguments instead of a parse failure.
func DecodeArgs(raw json.RawMessage, v any) error {
	if len(raw) == 0 || !json.Valid(raw) {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &MalformedArgsError{Err: err}
	}
	return nil
}

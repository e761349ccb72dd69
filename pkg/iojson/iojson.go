// Package iojson writes machine-readable command output. Commands switch to
// it when the user passes --json, so stdout carries exactly one JSON document.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the JSON shape written to stderr when a command fails in JSON mode.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// fallbackError builds the error document by hand for when marshaling itself
// failed, which indicates a bug.
func fallbackError(msg string, jsonErr error) string {
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// marshalError renders msg and data as an indented Error document.
func marshalError(msg string, data map[string]any) string {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		return fallbackError(msg, err)
	}
	return string(bits)
}

// WriteError writes an Error document to ew.
func WriteError(ew io.Writer, msg string, data map[string]any) error {
	_, err := fmt.Fprintln(ew, marshalError(msg, data))
	return err
}

// WriteWith writes obj as indented JSON to w. If obj cannot be marshaled an
// Error document is written to ew instead.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, werr := fmt.Fprintln(ew, fallbackError("marshal output", err))
		if werr != nil {
			return werr
		}
		return fmt.Errorf("marshal output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

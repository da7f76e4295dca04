// Package codec encodes the nested car values (engine, warranty, dimensions,
// feature lists and maintenance-date lists) into the text stored in a single
// column, and decodes them back.
//
// The stored form is compact JSON. Decoding is strict: unknown fields, trailing
// data and empty text are all rejected so that a corrupt column is reported
// rather than silently read as a zero value.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmpty is returned when decoding empty text.
var ErrEmpty = errors.New("codec: empty input")

// Encode serializes v to its stored text form.
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("codec: encode %T: %w", v, err)
	}
	return string(data), nil
}

// Decode parses text produced by Encode into a value of type T.
func Decode[T any](text string) (T, error) {
	var v T

	if strings.TrimSpace(text) == "" {
		return v, ErrEmpty
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("codec: decode %T: %w", v, err)
	}

	// Only one value may be stored per column
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return v, fmt.Errorf("codec: decode %T: trailing data after value", v)
	}

	return v, nil
}

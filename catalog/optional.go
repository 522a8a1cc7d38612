// Copyright (c) 2023 The KBase Project and its Contributors
// Copyright (c) 2023 Cohere Consulting, LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
)

// the text rendered in place of an attribute the catalog didn't provide
const AbsentMarker = "absent"

// Optional holds a catalog attribute that may or may not be present in a
// record. An attribute that is missing, null, or of an unexpected JSON type
// decodes to an absent value; this keeps "not measured" distinct from a
// measured zero.
type Optional[T any] struct {
	Value   T
	Present bool
}

// returns a present Optional holding the given value
func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Present: true}
}

// returns the held value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Present
}

// renders the held value, or AbsentMarker if there is none
func (o Optional[T]) String() string {
	if !o.Present {
		return AbsentMarker
	}
	return fmt.Sprintf("%v", o.Value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	*o = Optional[T]{}
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	// encoding/json turns null list elements into zero values, so a list
	// with a null element is treated as mistyped
	if len(data) > 0 && data[0] == '[' {
		var elements []json.RawMessage
		if err := json.Unmarshal(data, &elements); err == nil {
			for _, element := range elements {
				if bytes.Equal(bytes.TrimSpace(element), []byte("null")) {
					slog.Debug(fmt.Sprintf("Dropping catalog attribute value %s: null element", data))
					return nil
				}
			}
		}
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		// a mistyped attribute is dropped rather than failing the record
		slog.Debug(fmt.Sprintf("Dropping catalog attribute value %s: %s", data, err.Error()))
		return nil
	}
	o.Value = value
	o.Present = true
	return nil
}

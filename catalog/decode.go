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

// JSON objects are decoded into maps so that member names are matched exactly;
// encoding/json matches struct field tags case-insensitively
type jsonObject map[string]json.RawMessage

// returns the member with the given name, or false if it's missing or null
func (o jsonObject) member(name string) (json.RawMessage, bool) {
	raw, found := o[name]
	if !found || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	return raw, true
}

// Decodes a catalog response body into genome records, preserving the order in
// which the catalog lists them. A DecodeError is returned if the body isn't a
// JSON object with a "data" array, or if any record lacks an id or an
// accession. All other attributes are optional.
func Decode(body []byte) ([]GenomeRecord, error) {
	var response jsonObject
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &DecodeError{Index: -1, Message: "malformed JSON", Err: err}
	}
	rawData, found := response.member("data")
	if !found {
		return nil, &DecodeError{Index: -1, Message: "missing 'data'"}
	}
	var data []json.RawMessage
	if err := json.Unmarshal(rawData, &data); err != nil {
		return nil, &DecodeError{Index: -1, Message: "malformed 'data'", Err: err}
	}

	records := make([]GenomeRecord, len(data))
	for i, raw := range data {
		record, err := decodeRecord(i, raw)
		if err != nil {
			return nil, err
		}
		records[i] = record
	}
	slog.Debug(fmt.Sprintf("Decoded %d catalog records", len(records)))
	return records, nil
}

func decodeRecord(index int, raw json.RawMessage) (GenomeRecord, error) {
	var envelope jsonObject
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return GenomeRecord{}, &DecodeError{Index: index, Message: "malformed record", Err: err}
	}

	var record GenomeRecord
	rawId, found := envelope.member("id")
	if !found {
		return GenomeRecord{}, &DecodeError{Index: index, Message: "missing 'id'"}
	}
	if err := json.Unmarshal(rawId, &record.Id); err != nil {
		return GenomeRecord{}, &DecodeError{Index: index, Message: "malformed 'id'", Err: err}
	}
	if record.Id == "" {
		return GenomeRecord{}, &DecodeError{Index: index, Message: "missing 'id'"}
	}

	rawAttributes, found := envelope.member("attributes")
	if !found {
		return GenomeRecord{}, &DecodeError{Index: index, Message: "missing 'attributes'"}
	}
	var attributes jsonObject
	if err := json.Unmarshal(rawAttributes, &attributes); err != nil {
		return GenomeRecord{}, &DecodeError{Index: index, Message: "malformed attributes", Err: err}
	}

	rawAccession, found := attributes.member("accession")
	if !found {
		return GenomeRecord{}, &DecodeError{Index: index, Message: "missing 'accession'"}
	}
	if err := json.Unmarshal(rawAccession, &record.Attributes.Accession); err != nil {
		return GenomeRecord{}, &DecodeError{Index: index, Message: "malformed 'accession'", Err: err}
	}

	for name, slot := range record.Attributes.optionalSlots() {
		if rawValue, found := attributes[name]; found {
			if err := slot.UnmarshalJSON(rawValue); err != nil {
				return GenomeRecord{}, &DecodeError{Index: index, Message: fmt.Sprintf("malformed '%s'", name), Err: err}
			}
		}
	}
	return record, nil
}

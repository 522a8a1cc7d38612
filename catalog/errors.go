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
	"fmt"
)

// indicates that the catalog could not be reached, that the transport failed
// while the response was read, or that the catalog answered with a non-success
// status code (StatusCode is nonzero in that case)
type NetworkError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("Catalog request to %s failed with status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("Catalog request to %s failed: %s", e.Endpoint, e.Err)
}

func (e NetworkError) Unwrap() error {
	return e.Err
}

// indicates that a catalog response is not valid JSON or doesn't have the
// expected shape; Index identifies the offending record (-1 for the
// response as a whole)
type DecodeError struct {
	Index   int
	Message string
	Err     error
}

func (e DecodeError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	if e.Index >= 0 {
		return fmt.Sprintf("Invalid catalog record %d: %s", e.Index, msg)
	}
	return fmt.Sprintf("Invalid catalog response: %s", msg)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}

// this error type is emitted if the catalog redirects an HTTPS request to an
// HTTP endpoint
type DowngradedRedirectError struct {
	Endpoint string
}

func (e DowngradedRedirectError) Error() string {
	return fmt.Sprintf("The endpoint %s is attempting to downgrade an HTTPS request to HTTP",
		e.Endpoint)
}

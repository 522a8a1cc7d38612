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
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"emperror.dev/errors"
)

// Fetcher retrieves the raw body of the genome catalog
type Fetcher struct {
	// the catalog resource that is requested
	URL string
	// HTTP client used for the request
	Client *http.Client
}

// creates a fetcher for the catalog at the given URL; a nil client is replaced
// by a SecureHttpClient with no timeout
func NewFetcher(url string, client *http.Client) *Fetcher {
	if client == nil {
		client = SecureHttpClient(0)
	}
	return &Fetcher{
		URL:    url,
		Client: client,
	}
}

// performs a single GET request on the catalog with no parameters, returning
// the entire response body or a NetworkError
func (f Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	slog.Debug(fmt.Sprintf("GET: %s", f.URL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, http.NoBody)
	if err != nil {
		return nil, &NetworkError{
			Endpoint: f.URL,
			Err:      errors.Wrap(err, "cannot create request"),
		}
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &NetworkError{
			Endpoint: f.URL,
			Err:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &NetworkError{
			Endpoint:   f.URL,
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("unexpected status: %s", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{
			Endpoint: f.URL,
			Err:      errors.Wrap(err, "cannot read response body"),
		}
	}
	slog.Debug(fmt.Sprintf("Received %d bytes from %s", len(body), f.URL))
	return body, nil
}

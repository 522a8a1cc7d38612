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

// This package contains testing utilities for the genome catalog report.
package catalogtest

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
)

// Enables DEBUG log messages for the report's structured log (slog).
func EnableDebugLogging() {
	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelDebug)
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(h))
}

// Returns the JSON for a catalog record with the given id and a set of
// attributes given as a JSON object body (without braces), e.g.
// `"accession": "MGYG000000001", "length": 3219617`.
func Record(id, attributes string) string {
	return fmt.Sprintf(`{"type": "genomes", "id": %q, "attributes": {%s}, `+
		`"links": {"self": "https://www.ebi.ac.uk/metagenomics/api/v1/genomes/%s"}}`,
		id, attributes, id)
}

// Returns the JSON for a catalog response holding the given records.
func Response(records ...string) string {
	return fmt.Sprintf(`{"links": {"first": "https://www.ebi.ac.uk/metagenomics/api/v1/genomes?page=1"}, `+
		`"data": [%s], "meta": {"pagination": {"page": 1, "pages": 1, "count": %d}}}`,
		strings.Join(records, ", "), len(records))
}

// A catalog server fixture that answers every request with a fixed status and
// body, counting the requests it has served.
type Server struct {
	*httptest.Server
	Requests []*http.Request
}

// Starts a catalog server fixture. Call Close when finished.
func NewServer(status int, body string) *Server {
	server := &Server{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.Requests = append(server.Requests, r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	return server
}

// returns the URL of the fixture's genomes resource
func (s *Server) GenomesURL() string {
	return s.URL + "/metagenomics/api/v1/genomes"
}

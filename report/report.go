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

// Package report filters genome catalog records by geographic origin and
// writes a short text report for each match.
package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"emperror.dev/errors"

	"github.com/kbase/mgnify-report/catalog"
)

// the geographic origin reported by the genome report
const AsiaOrigin = "Asia"

// fetches the raw catalog body (implemented by catalog.Fetcher)
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// counts of records seen by a report run
type Summary struct {
	Fetched int
	Matched int
}

// Returns the records whose geographic origin is present and exactly equal to
// the given origin, in their original order.
func Filter(records []catalog.GenomeRecord, origin string) []catalog.GenomeRecord {
	matches := make([]catalog.GenomeRecord, 0)
	for _, record := range records {
		if recordOrigin, present := record.Attributes.GeographicOrigin.Get(); present && recordOrigin == origin {
			matches = append(matches, record)
		}
	}
	return matches
}

// Returns the download URL for the nucleotide FASTA of the genome with the
// given id: {baseURL}/{id}/downloads/{id}.fna. The base URL is used as given
// and the result is not checked.
func DownloadURL(baseURL, id string) string {
	return fmt.Sprintf("%s/%s/downloads/%s.fna", baseURL, id, id)
}

// Writes a six-line entry for each of the given records, each followed by a
// blank line.
func Write(w io.Writer, baseURL string, records []catalog.GenomeRecord) error {
	for _, record := range records {
		_, err := fmt.Fprintf(w, "Genome ID: %s\n"+
			"Genome Accession: %s\n"+
			"Genome Length: %s\n"+
			"Geographic Location: %s\n"+
			"GC-Content: %s\n"+
			"Download Link: %s\n\n",
			record.Id,
			record.Attributes.Accession,
			record.Attributes.Length,
			record.Attributes.GeographicOrigin,
			record.Attributes.GcContent,
			DownloadURL(baseURL, record.Id))
		if err != nil {
			return errors.Wrap(err, "cannot write report")
		}
	}
	return nil
}

// Fetches and decodes the catalog, then writes a report of the records from
// the given origin to w. Nothing is written if fetching or decoding fails.
func Run(ctx context.Context, fetcher Fetcher, baseURL, origin string, w io.Writer) (Summary, error) {
	var summary Summary

	body, err := fetcher.Fetch(ctx)
	if err != nil {
		return summary, err
	}
	records, err := catalog.Decode(body)
	if err != nil {
		return summary, err
	}
	summary.Fetched = len(records)

	matches := Filter(records, origin)
	summary.Matched = len(matches)
	slog.Debug(fmt.Sprintf("%d of %d catalog records have origin '%s'",
		summary.Matched, summary.Fetched, origin))

	// render the whole report before writing any of it
	var buffer bytes.Buffer
	if err := Write(&buffer, baseURL, matches); err != nil {
		return summary, err
	}
	if _, err := buffer.WriteTo(w); err != nil {
		return summary, errors.Wrap(err, "cannot write report")
	}
	return summary, nil
}

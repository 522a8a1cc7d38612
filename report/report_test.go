package report

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"testing"

	"emperror.dev/errors"
	"github.com/stretchr/testify/assert"

	"github.com/kbase/mgnify-report/catalog"
	"github.com/kbase/mgnify-report/catalogtest"
)

const baseURL = "https://www.ebi.ac.uk/metagenomics/api/v1/genomes"

// returns a record with the given id and (optional) origin
func record(id string, origin catalog.Optional[string]) catalog.GenomeRecord {
	return catalog.GenomeRecord{
		Id: id,
		Attributes: catalog.GenomeAttributes{
			Accession:        id,
			GeographicOrigin: origin,
		},
	}
}

func TestDownloadURL(t *testing.T) {
	assert.Equal(t,
		"https://www.ebi.ac.uk/metagenomics/api/v1/genomes/MGYG000001/downloads/MGYG000001.fna",
		DownloadURL(baseURL, "MGYG000001"))
	assert.Equal(t,
		"https://catalog.example.org/genomes//MGYG000001/downloads/MGYG000001.fna",
		DownloadURL("https://catalog.example.org/genomes/", "MGYG000001"))
}

func TestFilterMatchesExactOrigin(t *testing.T) {
	records := []catalog.GenomeRecord{
		record("MGYG000000001", catalog.Some("Asia")),
		record("MGYG000000002", catalog.Some("asia")),
		record("MGYG000000003", catalog.Some(" Asia")),
		record("MGYG000000004", catalog.Optional[string]{}),
		record("MGYG000000005", catalog.Some("Asia ")),
		record("MGYG000000006", catalog.Some("Europe")),
		record("MGYG000000007", catalog.Some("")),
	}
	matches := Filter(records, AsiaOrigin)
	assert.Equal(t, 1, len(matches))
	assert.Equal(t, "MGYG000000001", matches[0].Id)
}

func TestFilterIsStable(t *testing.T) {
	records := []catalog.GenomeRecord{
		record("MGYG000000009", catalog.Some("Asia")),
		record("MGYG000000002", catalog.Some("Europe")),
		record("MGYG000000005", catalog.Some("Asia")),
		record("MGYG000000001", catalog.Optional[string]{}),
		record("MGYG000000003", catalog.Some("Asia")),
	}
	matches := Filter(records, AsiaOrigin)
	ids := make([]string, len(matches))
	for i, match := range matches {
		ids[i] = match.Id
	}
	assert.Equal(t, []string{"MGYG000000009", "MGYG000000005", "MGYG000000003"}, ids)
}

func TestFilterWithNoRecords(t *testing.T) {
	assert.Equal(t, 0, len(Filter(nil, AsiaOrigin)))
}

func TestWrite(t *testing.T) {
	genome := record("MGYG000000001", catalog.Some("Asia"))
	genome.Attributes.Length = catalog.Some[uint64](3219617)
	genome.Attributes.GcContent = catalog.Some(28.26)

	var out bytes.Buffer
	err := Write(&out, baseURL, []catalog.GenomeRecord{genome})
	assert.Nil(t, err)
	assert.Equal(t, "Genome ID: MGYG000000001\n"+
		"Genome Accession: MGYG000000001\n"+
		"Genome Length: 3219617\n"+
		"Geographic Location: Asia\n"+
		"GC-Content: 28.26\n"+
		"Download Link: "+baseURL+"/MGYG000000001/downloads/MGYG000000001.fna\n\n",
		out.String())
}

func TestWriteRendersAbsentValues(t *testing.T) {
	var out bytes.Buffer
	err := Write(&out, baseURL, []catalog.GenomeRecord{record("MGYG000000001", catalog.Some("Asia"))})
	assert.Nil(t, err)
	assert.Contains(t, out.String(), "Genome Length: "+catalog.AbsentMarker+"\n")
	assert.Contains(t, out.String(), "GC-Content: "+catalog.AbsentMarker+"\n")
}

// three records from Asia, Europe, and nowhere in particular
var threeOrigins = catalogtest.Response(
	catalogtest.Record("MGYG000000001", `"accession": "MGYG000000001", "length": 3219617,
		"gc-content": 28.26, "geographic-origin": "Asia"`),
	catalogtest.Record("MGYG000000002", `"accession": "MGYG000000002", "length": 3048224,
		"gc-content": 51.61, "geographic-origin": "Europe"`),
	catalogtest.Record("MGYG000000003", `"accession": "MGYG000000003", "length": 3502378`),
)

func TestRunReportsAsianGenomes(t *testing.T) {
	assert := assert.New(t)
	server := catalogtest.NewServer(http.StatusOK, threeOrigins)
	defer server.Close()

	var out bytes.Buffer
	fetcher := catalog.NewFetcher(server.GenomesURL(), nil)
	summary, err := Run(context.Background(), fetcher, server.GenomesURL(), AsiaOrigin, &out)
	assert.Nil(err)
	assert.Equal(Summary{Fetched: 3, Matched: 1}, summary)
	assert.Equal("Genome ID: MGYG000000001\n"+
		"Genome Accession: MGYG000000001\n"+
		"Genome Length: 3219617\n"+
		"Geographic Location: Asia\n"+
		"GC-Content: 28.26\n"+
		"Download Link: "+server.GenomesURL()+"/MGYG000000001/downloads/MGYG000000001.fna\n\n",
		out.String())
}

func TestRunRendersAbsentGcContent(t *testing.T) {
	body := catalogtest.Response(
		catalogtest.Record("MGYG000000004", `"accession": "MGYG000000004", "length": 2811203,
			"geographic-origin": "Asia"`))
	server := catalogtest.NewServer(http.StatusOK, body)
	defer server.Close()

	var out bytes.Buffer
	fetcher := catalog.NewFetcher(server.GenomesURL(), nil)
	_, err := Run(context.Background(), fetcher, baseURL, AsiaOrigin, &out)
	assert.Nil(t, err)
	assert.Contains(t, out.String(), "Genome Length: 2811203\n")
	assert.Contains(t, out.String(), "GC-Content: "+catalog.AbsentMarker+"\n")
	assert.NotContains(t, out.String(), "GC-Content: 0\n")
}

func TestRunWritesNothingForMissingData(t *testing.T) {
	server := catalogtest.NewServer(http.StatusOK, `{"links": {}, "meta": {"pagination": {"count": 0}}}`)
	defer server.Close()

	var out bytes.Buffer
	fetcher := catalog.NewFetcher(server.GenomesURL(), nil)
	_, err := Run(context.Background(), fetcher, baseURL, AsiaOrigin, &out)
	var decodeErr *catalog.DecodeError
	assert.True(t, errors.As(err, &decodeErr), "missing 'data' didn't produce a DecodeError")
	assert.Equal(t, 0, out.Len())
}

func TestRunWritesNothingForNetworkFailure(t *testing.T) {
	server := catalogtest.NewServer(http.StatusBadGateway, "<html>Bad Gateway</html>")
	defer server.Close()

	var out bytes.Buffer
	fetcher := catalog.NewFetcher(server.GenomesURL(), nil)
	_, err := Run(context.Background(), fetcher, baseURL, AsiaOrigin, &out)
	var netErr *catalog.NetworkError
	assert.True(t, errors.As(err, &netErr), "bad gateway didn't produce a NetworkError")
	assert.Equal(t, 0, out.Len())
}

// a writer that always fails
type brokenWriter struct{}

func (w brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRunReportsWriteFailure(t *testing.T) {
	server := catalogtest.NewServer(http.StatusOK, threeOrigins)
	defer server.Close()

	fetcher := catalog.NewFetcher(server.GenomesURL(), nil)
	_, err := Run(context.Background(), fetcher, baseURL, AsiaOrigin, brokenWriter{})
	assert.NotNil(t, err)
}

// this function gets called at the beginning of a test session
func setup() {
	catalogtest.EnableDebugLogging()
}

// this function gets called after all tests have been run
func breakdown() {
}

// this runs setup, runs all tests, and does breakdown
func TestMain(m *testing.M) {
	setup()
	status := m.Run()
	breakdown()
	os.Exit(status)
}

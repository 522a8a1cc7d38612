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
	"encoding/json"
)

// GenomeRecord is a single entry in the MGnify genome catalog
// (see https://www.ebi.ac.uk/metagenomics/api/v1/genomes)
type GenomeRecord struct {
	// identifier assigned by the catalog (e.g. "MGYG000000001")
	Id         string
	Attributes GenomeAttributes
}

// GenomeAttributes holds the descriptive attributes of a genome record. Only
// the accession is required; every other attribute may be absent.
type GenomeAttributes struct {
	Accession string

	GenomeId        Optional[uint64]
	GeographicRange Optional[[]string]
	// the single region from which the genome was sampled
	GeographicOrigin Optional[string]

	// accessions in external databases
	EnaGenomeAccession    Optional[string]
	EnaSampleAccession    Optional[string]
	EnaStudyAccession     Optional[string]
	NcbiGenomeAccession   Optional[string]
	NcbiSampleAccession   Optional[string]
	NcbiStudyAccession    Optional[string]
	ImgGenomeAccession    Optional[string]
	PatricGenomeAccession Optional[string]

	// assembly statistics
	Length        Optional[uint64]
	NumContigs    Optional[uint64]
	N50           Optional[float64]
	GcContent     Optional[float64]
	Type          Optional[string]
	Completeness  Optional[float64]
	Contamination Optional[float64]

	// RNA counts
	Rna5s  Optional[float64]
	Rna16s Optional[float64]
	Rna23s Optional[float64]
	TRnas  Optional[float64]
	NcRnas Optional[uint64]

	// annotation
	NumProteins    Optional[uint64]
	EggnogCoverage Optional[float64]
	IprCoverage    Optional[float64]
	TaxonLineage   Optional[string]

	// pangenome
	NumGenomesTotal        Optional[uint64]
	PangenomeSize          Optional[uint64]
	PangenomeCoreSize      Optional[uint64]
	PangenomeAccessorySize Optional[uint64]
}

// returns the optional attribute slots keyed by the catalog's attribute names,
// which are matched exactly (case included)
func (a *GenomeAttributes) optionalSlots() map[string]json.Unmarshaler {
	return map[string]json.Unmarshaler{
		"genome-id":                &a.GenomeId,
		"geographic-range":         &a.GeographicRange,
		"geographic-origin":        &a.GeographicOrigin,
		"ena-genome-accession":     &a.EnaGenomeAccession,
		"ena-sample-accession":     &a.EnaSampleAccession,
		"ena-study-accession":      &a.EnaStudyAccession,
		"ncbi-genome-accession":    &a.NcbiGenomeAccession,
		"ncbi-sample-accession":    &a.NcbiSampleAccession,
		"ncbi-study-accession":     &a.NcbiStudyAccession,
		"img-genome-accession":     &a.ImgGenomeAccession,
		"patric-genome-accession":  &a.PatricGenomeAccession,
		"length":                   &a.Length,
		"num-contigs":              &a.NumContigs,
		"n-50":                     &a.N50,
		"gc-content":               &a.GcContent,
		"type":                     &a.Type,
		"completeness":             &a.Completeness,
		"contamination":            &a.Contamination,
		"rna-5s":                   &a.Rna5s,
		"rna-16s":                  &a.Rna16s,
		"rna-23s":                  &a.Rna23s,
		"trnas":                    &a.TRnas,
		"nc-rnas":                  &a.NcRnas,
		"num-proteins":             &a.NumProteins,
		"eggnog-coverage":          &a.EggnogCoverage,
		"ipr-coverage":             &a.IprCoverage,
		"taxon-lineage":            &a.TaxonLineage,
		"num-genomes-total":        &a.NumGenomesTotal,
		"pangenome-size":           &a.PangenomeSize,
		"pangenome-core-size":      &a.PangenomeCoreSize,
		"pangenome-accessory-size": &a.PangenomeAccessorySize,
	}
}

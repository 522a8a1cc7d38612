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

package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kbase/mgnify-report/report"
)

// the configuration built into the report binary
//
//go:embed default.yaml
var Default []byte

// the catalog queried when a configuration doesn't name one
const DefaultCatalogURL = "https://www.ebi.ac.uk/metagenomics/api/v1/genomes"

// parameters for the genome catalog queried by the report
type catalogConfig struct {
	// base URL of the genome catalog (also used to build download links)
	URL string `json:"url" yaml:"url"`
	// HTTP client timeout in seconds (0 leaves the transport's default in place)
	Timeout int `json:"timeout" yaml:"timeout"`
}

// returns the catalog client timeout as a duration
func (c catalogConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// parameters that determine which records are reported
type reportConfig struct {
	// the geographic origin a record must have to appear in the report
	Origin string `json:"origin" yaml:"origin"`
}

// global config variables
var Catalog catalogConfig
var Report reportConfig

// This struct performs the unmarshalling from the YAML config data and then
// copies its fields to the globals above.
type configFile struct {
	Catalog catalogConfig `yaml:"catalog"`
	Report  reportConfig  `yaml:"report"`
}

// This helper parses the given configuration data, returning an error
// indicating success or failure.
func readConfig(bytes []byte) error {
	var conf configFile
	conf.Catalog.URL = DefaultCatalogURL
	conf.Report.Origin = report.AsiaOrigin
	err := yaml.Unmarshal(bytes, &conf)
	if err != nil {
		slog.Error(fmt.Sprintf("Couldn't parse configuration data: %s", err))
		return err
	}

	// copy the config data into place
	Catalog = conf.Catalog
	Report = conf.Report

	return nil
}

// This helper validates the given catalog parameters, returning an error
// indicating success or failure.
func validateCatalogParameters(params catalogConfig) error {
	catalogURL, err := url.ParseRequestURI(params.URL)
	if err != nil {
		return fmt.Errorf("Invalid catalog URL: %s (%s)", params.URL, err.Error())
	}
	if catalogURL.Scheme != "https" && catalogURL.Scheme != "http" {
		return fmt.Errorf("Invalid catalog URL: %s (scheme must be http or https)",
			params.URL)
	}
	if catalogURL.Host == "" {
		return fmt.Errorf("Invalid catalog URL: %s (no host)", params.URL)
	}
	if params.Timeout < 0 {
		return fmt.Errorf("Invalid catalog timeout: %d (must be non-negative)",
			params.Timeout)
	}
	return nil
}

// This helper validates the configuration, returning an error that indicates
// success or failure.
func validateConfig() error {
	err := validateCatalogParameters(Catalog)
	if err != nil {
		return err
	}
	if Report.Origin == "" {
		return fmt.Errorf("No geographic origin was provided for the report!")
	}
	return nil
}

// Initializes the report configuration using the given YAML byte data.
func Init(yamlData []byte) error {

	// Read the configuration from our YAML data.
	err := readConfig(yamlData)
	if err != nil {
		return err
	}

	// Validate the configuration.
	return validateConfig()
}

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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"emperror.dev/errors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kbase/mgnify-report/catalog"
	"github.com/kbase/mgnify-report/config"
	"github.com/kbase/mgnify-report/report"
)

// YAML configuration data fed to config.Init
var configData = config.Default

var rootCmd = &cobra.Command{
	Use:   "mgnify-report",
	Short: "Report MGnify genomes from Asia",
	Long: `Fetches the MGnify genome catalog, and prints the ID, accession, length,
geographic origin, GC content, and FASTA download link of every genome whose
geographic origin is Asia.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	if err := config.Init(configData); err != nil {
		return errors.WrapIf(err, "Couldn't initialize the configuration")
	}

	logger := slog.Default().With("run", uuid.New().String())
	logger.Info("Fetching genome catalog", "url", config.Catalog.URL)

	fetcher := catalog.NewFetcher(config.Catalog.URL,
		catalog.SecureHttpClient(config.Catalog.TimeoutDuration()))
	summary, err := report.Run(context.Background(), fetcher, config.Catalog.URL,
		config.Report.Origin, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	logger.Info("Genome report complete", "fetched", summary.Fetched,
		"matched", summary.Matched, "origin", config.Report.Origin)
	return nil
}

// runs the root command, returning the process exit status
func execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "%s: %s\n", rootCmd.Use, err.Error())
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute())
}

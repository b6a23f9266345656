package report

import (
	"fmt"
	"io"
	"strings"

	domain "github.com/jmazoveracode/veracode-target-urls/internal/domain/targets"
)

// Print renders the human-readable grouped report. The console output is for
// operators; automation should read the JSON file instead.
func Print(w io.Writer, recs []domain.TargetRecord) {
	fmt.Fprintf(w, "\n=== RESULTS ===\n")
	fmt.Fprintf(w, "Total target URLs found: %d\n", len(recs))

	if len(recs) == 0 {
		fmt.Fprintln(w, "No target URLs found.")
		return
	}

	fmt.Fprintln(w, "\nTarget URLs by Application:")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, g := range GroupByApplication(recs) {
		fmt.Fprintf(w, "\nApplication: %s\n", g.Application)
		for _, rec := range g.Records {
			fmt.Fprintf(w, "  Analysis: %s (ID: %s)\n", rec.AnalysisName, rec.AnalysisID)
			fmt.Fprintf(w, "  Scan ID: %s\n", rec.ScanID)
			fmt.Fprintf(w, "  Scan Config: %s\n", rec.ScanConfigName)
			fmt.Fprintf(w, "  Target URL: %s\n", rec.TargetURL)
			fmt.Fprintf(w, "  Status: %s\n", rec.LatestStatus)
			fmt.Fprintf(w, "  Created: %s\n", rec.CreatedOn)
			fmt.Fprintf(w, "  Modified: %s\n", rec.LastModifiedOn)
			fmt.Fprintln(w)
		}
	}
}

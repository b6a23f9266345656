package report

import (
	"encoding/json"
	"fmt"
	"os"

	domain "github.com/jmazoveracode/veracode-target-urls/internal/domain/targets"
)

// DefaultFile is the report written to the working directory.
const DefaultFile = "veracode_target_urls.json"

// WriteFile persists the ungrouped record set, in original order, as a
// pretty-printed JSON array. An existing file at path is overwritten.
func WriteFile(path string, recs []domain.TargetRecord) error {
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

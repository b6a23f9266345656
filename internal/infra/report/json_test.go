package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/jmazoveracode/veracode-target-urls/internal/domain/targets"
)

func TestWriteFileRoundTrip(t *testing.T) {
	recs := []domain.TargetRecord{
		{
			AnalysisID:      "A1",
			AnalysisName:    "App Scan",
			ApplicationName: "Shop",
			ScanID:          "s1",
			ScanConfigName:  "N/A",
			TargetURL:       "https://shop.example.com",
			LatestStatus:    "FINISHED",
			CreatedOn:       "2026-01-02T03:04:05Z",
			LastModifiedOn:  "Unknown",
		},
	}

	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, WriteFile(path, recs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// stable key set of 9, pretty-printed with 2-space indent
	var generic []map[string]string
	require.NoError(t, json.Unmarshal(data, &generic))
	require.Len(t, generic, 1)
	assert.Len(t, generic[0], 9)
	for _, key := range []string{
		"analysis_id", "analysis_name", "application_name", "scan_id",
		"scan_config_name", "target_url", "latest_status", "created_on", "last_modified_on",
	} {
		assert.Contains(t, generic[0], key)
	}
	assert.True(t, strings.Contains(string(data), "\n  {"), "2-space indentation")

	var parsed []domain.TargetRecord
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, recs, parsed)
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteFile(path, nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, nil)
	assert.Contains(t, buf.String(), "Total target URLs found: 0")
	assert.Contains(t, buf.String(), "No target URLs found.")
}

func TestPrintGrouped(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, sampleRecords())

	out := buf.String()
	assert.Contains(t, out, "Total target URLs found: 3")
	assert.Contains(t, out, "Application: Shop")
	assert.Contains(t, out, "Application: Blog")
	assert.Less(t, strings.Index(out, "Application: Shop"), strings.Index(out, "Application: Blog"))
	assert.Contains(t, out, "Target URL: https://shop.example.com")
}

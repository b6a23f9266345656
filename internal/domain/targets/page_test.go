package targets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAnalysesPage(t *testing.T) {
	body := []byte(`{
		"_embedded": {
			"analyses": [
				{"analysis_id": "A1", "name": "App Scan", "application": {"name": "Shop"}},
				{"analysis_id": "A2", "name": "Nightly"}
			]
		}
	}`)

	page, err := DecodeAnalysesPage(body)
	require.NoError(t, err)
	require.Len(t, page.Analyses, 2)
	assert.Equal(t, AnalysisID("A1"), page.Analyses[0].ID)
	assert.Equal(t, "Shop", page.Analyses[0].Application.Name)
	assert.Equal(t, ValueUnknown, page.Analyses[1].ApplicationName())
}

func TestDecodeMissingEnvelopeIsEmpty(t *testing.T) {
	for _, body := range []string{`{}`, `{"_embedded": {}}`, `{"page": {"size": 20}}`} {
		page, err := DecodeAnalysesPage([]byte(body))
		require.NoError(t, err, body)
		assert.Empty(t, page.Analyses, body)

		scans, err := DecodeScansPage([]byte(body))
		require.NoError(t, err, body)
		assert.Empty(t, scans.Scans, body)
	}
}

func TestDecodeScansPage(t *testing.T) {
	body := []byte(`{
		"_embedded": {
			"scans": [
				{
					"scan_id": "s1",
					"target_url": "https://shop.example.com",
					"latest_occurrence_status": {"status_type": "FINISHED"}
				}
			]
		}
	}`)

	page, err := DecodeScansPage(body)
	require.NoError(t, err)
	require.Len(t, page.Scans, 1)
	assert.Equal(t, "FINISHED", page.Scans[0].LatestOccurrenceStatus.StatusType)
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := DecodeAnalysesPage([]byte(`<html>not json</html>`))
	assert.Error(t, err)
}

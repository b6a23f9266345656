package targets

import "encoding/json"

// The config service wraps listings in a HAL envelope:
// {"_embedded": {"analyses": [...]}} or {"_embedded": {"scans": [...]}}.
// A missing envelope or key means an empty listing, not an error.

// AnalysesPage is one page of the analyses listing.
type AnalysesPage struct {
	Analyses []Analysis
}

// ScansPage is one page of the per-analysis scans listing.
type ScansPage struct {
	Scans []Scan
}

type embeddedEnvelope struct {
	Embedded struct {
		Analyses []Analysis `json:"analyses"`
		Scans    []Scan     `json:"scans"`
	} `json:"_embedded"`
}

// DecodeAnalysesPage decodes an analyses listing response body.
func DecodeAnalysesPage(body []byte) (AnalysesPage, error) {
	var env embeddedEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return AnalysesPage{}, err
	}
	return AnalysesPage{Analyses: env.Embedded.Analyses}, nil
}

// DecodeScansPage decodes a scans listing response body.
func DecodeScansPage(body []byte) (ScansPage, error) {
	var env embeddedEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ScansPage{}, err
	}
	return ScansPage{Scans: env.Embedded.Scans}, nil
}

package targets

// Placeholder values substituted for missing optional fields. These are part
// of the output contract: downstream consumers of the JSON report expect the
// literal strings, not absent keys.
const (
	ValueUnknown      = "Unknown"
	ValueNotAvailable = "N/A"
)

// ID tipe untuk Analysis
type AnalysisID string

// Application embedded in an analysis listing entry
type Application struct {
	Name string `json:"name"`
}

// Analysis is a named dynamic-analysis configuration owning zero or more scans.
type Analysis struct {
	ID          AnalysisID  `json:"analysis_id"`
	Name        string      `json:"name"`
	Application Application `json:"application"`
}

// ApplicationName returns the owning application's name, or the Unknown
// placeholder when the listing omitted it.
func (a Analysis) ApplicationName() string {
	if a.Application.Name == "" {
		return ValueUnknown
	}
	return a.Application.Name
}

// OccurrenceStatus wraps the status of the most recent scan occurrence.
type OccurrenceStatus struct {
	StatusType string `json:"status_type"`
}

// Scan is one dynamic scan instance under an analysis. Every field except
// scan_id is optional in the config service's responses.
type Scan struct {
	ScanID                 string           `json:"scan_id"`
	TargetURL              string           `json:"target_url"`
	ApplicationName        string           `json:"application_name"`
	ScanConfigName         string           `json:"scan_config_name"`
	LatestOccurrenceStatus OccurrenceStatus `json:"latest_occurrence_status"`
	CreatedOn              string           `json:"created_on"`
	LastModifiedOn         string           `json:"last_modified_on"`
}

// TargetRecord is the flattened join of one scan with its owning analysis.
type TargetRecord struct {
	AnalysisID      string `json:"analysis_id"`
	AnalysisName    string `json:"analysis_name"`
	ApplicationName string `json:"application_name"`
	ScanID          string `json:"scan_id"`
	ScanConfigName  string `json:"scan_config_name"`
	TargetURL       string `json:"target_url"`
	LatestStatus    string `json:"latest_status"`
	CreatedOn       string `json:"created_on"`
	LastModifiedOn  string `json:"last_modified_on"`
}

// NewTargetRecord projects a scan joined with its owning analysis. The second
// return value is false when the scan carries no target URL; such scans are
// filtered, not erroneous.
func NewTargetRecord(a Analysis, s Scan) (TargetRecord, bool) {
	if s.TargetURL == "" {
		return TargetRecord{}, false
	}

	appName := s.ApplicationName
	if appName == "" {
		appName = a.ApplicationName()
	}

	return TargetRecord{
		AnalysisID:      string(a.ID),
		AnalysisName:    orDefault(a.Name, ValueUnknown),
		ApplicationName: appName,
		ScanID:          s.ScanID,
		ScanConfigName:  orDefault(s.ScanConfigName, ValueNotAvailable),
		TargetURL:       s.TargetURL,
		LatestStatus:    orDefault(s.LatestOccurrenceStatus.StatusType, ValueUnknown),
		CreatedOn:       orDefault(s.CreatedOn, ValueUnknown),
		LastModifiedOn:  orDefault(s.LastModifiedOn, ValueUnknown),
	}, true
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

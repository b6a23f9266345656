package prompt

import "fmt"

// Prompts for the coverage-summary use-case. The model receives the full
// JSON report and must answer with a short operator-facing digest.

func GetSystemPrompt() string {
	return `You are a security operations assistant. You receive a JSON array of
dynamic-analysis target records with the keys analysis_id, analysis_name,
application_name, scan_id, scan_config_name, target_url, latest_status,
created_on and last_modified_on. Respond with a JSON object of the shape
{"summary": string, "applications": int, "stale_scans": [string], "advice": string}.
"stale_scans" lists target URLs whose latest status suggests the scan never
ran or failed. Keep "summary" under 120 words.`
}

func GetUserPrompt(reportJSON string) string {
	return fmt.Sprintf("Summarize the dynamic-analysis coverage in this report:\n%s", reportJSON)
}

package models

// DispatchReport summarizes one pipeline run: how many candidates were
// discovered, how many were dropped as already contacted, and the outcome of
// every dispatch attempt. Emails holds only the addresses that were actually
// sent.
type DispatchReport struct {
	Message          string   `json:"message"`
	JobTitle         string   `json:"job_title"`
	TotalScraped     int      `json:"total_emails_scraped"`
	SkippedDuplicate int      `json:"emails_skipped_duplicate"`
	NewFound         int      `json:"new_emails_found"`
	Sent             int      `json:"emails_sent"`
	Failed           int      `json:"emails_failed"`
	Emails           []string `json:"emails"`
}

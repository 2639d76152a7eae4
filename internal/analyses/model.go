package analyses

import "time"

// Analysis is a saved analysis result tied to a resume. UserID is derived
// from the owning resume and never stored directly.
type Analysis struct {
	ID             string
	ResumeID       string
	UserID         string
	Result         Result
	JobDescription string
	AnalyzedAt     time.Time
}

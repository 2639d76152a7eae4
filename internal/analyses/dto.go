package analyses

// AnalysisResponse is the outward-facing representation of a saved analysis.
type AnalysisResponse struct {
	ID             string `json:"id"`
	AISummary      Result `json:"aiSummary"`
	JobDescription string `json:"jobDescription"`
	ResumeID       string `json:"resumeId"`
}

func toResponse(analysis Analysis) AnalysisResponse {
	return AnalysisResponse{
		ID:             analysis.ID,
		AISummary:      analysis.Result,
		JobDescription: analysis.JobDescription,
		ResumeID:       analysis.ResumeID,
	}
}

type jobDescriptionRequest struct {
	JobDescription string `json:"jobDescription"`
}

type createAnalysisRequest struct {
	ResumeID       string  `json:"resumeId"`
	JobDescription string  `json:"jobDescription"`
	AISummary      *Result `json:"aiSummary"`
}

type updateAnalysisRequest struct {
	JobDescription string  `json:"jobDescription"`
	AISummary      *Result `json:"aiSummary"`
}

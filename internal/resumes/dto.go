package resumes

import "time"

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	ParsedText string    `json:"parsedText"`
	UserID     string    `json:"userId"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func toResponse(resume Resume) ResumeResponse {
	return ResumeResponse{
		ID:         resume.ID,
		FileName:   resume.FileName,
		FileType:   resume.MimeType,
		ParsedText: resume.ParsedText,
		UserID:     resume.UserID,
		UploadedAt: resume.UploadedAt,
	}
}

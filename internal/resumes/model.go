package resumes

import "time"

// Resume is an uploaded resume owned by a user. FileData is loaded lazily
// through a dedicated repo call, never on metadata reads.
type Resume struct {
	ID         string
	UserID     string
	FileName   string
	MimeType   string
	ParsedText string
	FileData   []byte
	UploadedAt time.Time
}

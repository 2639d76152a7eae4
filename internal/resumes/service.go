package resumes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-analyzer/internal/extract"
	"resume-analyzer/internal/llm"
)

// ErrInvalidUpload covers every way an uploaded file can be rejected:
// empty payload, wrong name or type, unreadable PDF, or no extractable text.
var ErrInvalidUpload = errors.New("invalid upload")

const resumeCheckPrompt = `You will be given the text content of a document.
Answer with exactly one word, YES or NO: is this document a resume or CV?

Document:
%s`

// Service implements the resume ingestion pipeline and owner-scoped reads.
type Service struct {
	Repo Repo

	// LLM and ContentCheck enable the optional "is this a resume" gate.
	LLM          llm.Client
	ContentCheck bool

	now       func() time.Time
	extractFn func(data []byte) (string, error)
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo, now: time.Now, extractFn: extract.Text}
}

// Upload validates and parses the file, then persists metadata, extracted
// text and raw bytes in one record. Nothing is written before extraction
// succeeds.
func (s *Service) Upload(ctx context.Context, userID, fileName, mimeType string, data []byte) (Resume, error) {
	if len(data) == 0 {
		return Resume{}, fmt.Errorf("%w: empty file", ErrInvalidUpload)
	}
	if !strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return Resume{}, fmt.Errorf("%w: only PDF files are supported", ErrInvalidUpload)
	}
	if mimeType != "" && mimeType != "application/pdf" {
		return Resume{}, fmt.Errorf("%w: unexpected content type %q", ErrInvalidUpload, mimeType)
	}

	extractFn := s.extractFn
	if extractFn == nil {
		extractFn = extract.Text
	}
	text, err := extractFn(data)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrEncrypted):
			return Resume{}, fmt.Errorf("%w: file is password protected", ErrInvalidUpload)
		case errors.Is(err, extract.ErrNoText):
			return Resume{}, fmt.Errorf("%w: no readable text found", ErrInvalidUpload)
		default:
			return Resume{}, fmt.Errorf("%w: could not read PDF: %v", ErrInvalidUpload, err)
		}
	}
	text = extract.Normalize(text)
	if text == "" {
		return Resume{}, fmt.Errorf("%w: no readable text found", ErrInvalidUpload)
	}

	if s.ContentCheck && s.LLM != nil {
		ok, err := s.looksLikeResume(ctx, text)
		if err == nil && !ok {
			return Resume{}, fmt.Errorf("%w: document does not look like a resume", ErrInvalidUpload)
		}
	}

	nowFn := s.now
	if nowFn == nil {
		nowFn = time.Now
	}
	resume := Resume{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		MimeType:   "application/pdf",
		ParsedText: text,
		FileData:   data,
		UploadedAt: nowFn().UTC(),
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	resume.FileData = nil
	return resume, nil
}

func (s *Service) looksLikeResume(ctx context.Context, text string) (bool, error) {
	answer, err := s.LLM.Complete(ctx, fmt.Sprintf(resumeCheckPrompt, text))
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(answer)), "YES"), nil
}

func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// GetFile returns the stored bytes plus the metadata needed for download headers.
func (s *Service) GetFile(ctx context.Context, userID, resumeID string) (Resume, []byte, error) {
	resume, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, nil, err
	}
	data, err := s.Repo.GetFileData(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, nil, err
	}
	return resume, data, nil
}

func (s *Service) ListMine(ctx context.Context, userID string) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	return s.Repo.Delete(ctx, userID, resumeID)
}

// DeleteByUser satisfies the cascade hook used by user deletion.
func (s *Service) DeleteByUser(ctx context.Context, userID string) error {
	return s.Repo.DeleteByUser(ctx, userID)
}

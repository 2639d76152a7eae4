package analyses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/resumes"
)

var (
	// ErrResumeNotFound signals the caller owns no resume with the given id.
	ErrResumeNotFound = errors.New("resume not found")
	// ErrInvalidJobDescription covers empty or rejected job descriptions.
	ErrInvalidJobDescription = errors.New("invalid job description")
	// ErrAnalysisFailed wraps model call and response parsing failures.
	ErrAnalysisFailed = errors.New("analysis failed")
)

// ResumeSource provides owner-scoped resume lookups.
type ResumeSource interface {
	Get(ctx context.Context, userID, resumeID string) (resumes.Resume, error)
}

// Service runs analyses against the model and manages saved results.
type Service struct {
	Repo    Repo
	Resumes ResumeSource
	LLM     llm.Client

	// ContentCheck enables the AI job-description validity gate.
	ContentCheck bool

	now func() time.Time
}

func NewService(repo Repo, resumeSource ResumeSource, client llm.Client) *Service {
	return &Service{Repo: repo, Resumes: resumeSource, LLM: client, now: time.Now}
}

// Analyze scores the resume's extracted text against the job description and
// returns the structured result. Nothing is persisted; saving is a separate
// Create call.
func (s *Service) Analyze(ctx context.Context, userID, resumeID, jobDescription string) (Result, error) {
	jobDescription = strings.TrimSpace(strings.ReplaceAll(jobDescription, `"`, ""))
	if jobDescription == "" {
		return Result{}, fmt.Errorf("%w: job description is empty", ErrInvalidJobDescription)
	}

	if s.ContentCheck {
		if err := s.checkJobDescription(ctx, jobDescription); err != nil {
			return Result{}, err
		}
	}

	resume, err := s.Resumes.Get(ctx, userID, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return Result{}, ErrResumeNotFound
		}
		return Result{}, err
	}

	raw, err := s.LLM.Complete(ctx, analysisPrompt(jobDescription, resume.ParsedText))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	result, err := ParseResult(raw)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	return result, nil
}

func (s *Service) checkJobDescription(ctx context.Context, jobDescription string) error {
	answer, err := s.LLM.Complete(ctx, jobDescriptionCheckPrompt(jobDescription))
	if err != nil {
		// The gate is advisory, a provider failure must not block analysis.
		return nil
	}
	if strings.EqualFold(strings.TrimSpace(answer), "No") {
		return fmt.Errorf("%w: the provided text is not a job description", ErrInvalidJobDescription)
	}
	return nil
}

// Create saves an analysis result against a resume the caller owns.
func (s *Service) Create(ctx context.Context, userID, resumeID, jobDescription string, result Result) (Analysis, error) {
	if _, err := s.Resumes.Get(ctx, userID, resumeID); err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return Analysis{}, ErrResumeNotFound
		}
		return Analysis{}, err
	}

	nowFn := s.now
	if nowFn == nil {
		nowFn = time.Now
	}
	analysis := Analysis{
		ID:             uuid.NewString(),
		ResumeID:       resumeID,
		UserID:         userID,
		Result:         result,
		JobDescription: jobDescription,
		AnalyzedAt:     nowFn().UTC(),
	}
	if err := s.Repo.Create(ctx, analysis); err != nil {
		return Analysis{}, err
	}
	return analysis, nil
}

func (s *Service) Get(ctx context.Context, userID, analysisID string) (Analysis, error) {
	return s.Repo.GetByID(ctx, userID, analysisID)
}

func (s *Service) ListByResume(ctx context.Context, userID, resumeID string) ([]Analysis, error) {
	return s.Repo.ListByResume(ctx, userID, resumeID)
}

// Update replaces the stored result and job description. Blank fields keep
// their current values.
func (s *Service) Update(ctx context.Context, userID, analysisID, jobDescription string, result *Result) (Analysis, error) {
	analysis, err := s.Repo.GetByID(ctx, userID, analysisID)
	if err != nil {
		return Analysis{}, err
	}
	if jobDescription != "" {
		analysis.JobDescription = jobDescription
	}
	if result != nil {
		analysis.Result = *result
	}
	if err := s.Repo.Update(ctx, analysis); err != nil {
		return Analysis{}, err
	}
	return analysis, nil
}

func (s *Service) Delete(ctx context.Context, userID, analysisID string) error {
	return s.Repo.Delete(ctx, userID, analysisID)
}

// DeleteByResume is the in-memory cascade hook for resume deletion.
func (s *Service) DeleteByResume(ctx context.Context, resumeID string) error {
	return s.Repo.DeleteByResume(ctx, resumeID)
}

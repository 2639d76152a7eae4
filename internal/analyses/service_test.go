package analyses

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"resume-analyzer/internal/resumes"
)

type scriptedLLM struct {
	responses []string
	err       error
	prompts   []string
}

func (s *scriptedLLM) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) == 0 {
		return "", errors.New("no scripted response")
	}
	next := s.responses[0]
	s.responses = s.responses[1:]
	return next, nil
}

func newTestService(t *testing.T, client *scriptedLLM) (*Service, string) {
	t.Helper()

	resumeRepo := resumes.NewMemoryRepo()
	resume := resumes.Resume{
		ID:         "resume-1",
		UserID:     "user-1",
		FileName:   "resume.pdf",
		MimeType:   "application/pdf",
		ParsedText: "Go engineer with Postgres experience",
		FileData:   []byte("%PDF-1.4"),
		UploadedAt: time.Now().UTC(),
	}
	if err := resumeRepo.Create(context.Background(), resume); err != nil {
		t.Fatalf("seed resume: %v", err)
	}

	svc := NewService(NewMemoryRepo(), resumes.NewService(resumeRepo), client)
	return svc, resume.ID
}

func TestAnalyzeReturnsParsedResult(t *testing.T) {
	client := &scriptedLLM{responses: []string{"```json\n" + sampleResultJSON + "\n```"}}
	svc, resumeID := newTestService(t, client)

	result, err := svc.Analyze(context.Background(), "user-1", resumeID, `Senior "Go" Engineer role`)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result.MatchScore != 82 {
		t.Fatalf("match score = %d", result.MatchScore)
	}

	if len(client.prompts) != 1 {
		t.Fatalf("expected 1 model call, got %d", len(client.prompts))
	}
	prompt := client.prompts[0]
	if strings.Contains(prompt, `Senior "Go"`) {
		t.Fatal("quotes must be stripped from the job description")
	}
	if !strings.Contains(prompt, "Senior Go Engineer role") {
		t.Fatalf("job description missing from prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Go engineer with Postgres experience") {
		t.Fatalf("resume text missing from prompt:\n%s", prompt)
	}
}

func TestAnalyzeEmptyJobDescription(t *testing.T) {
	client := &scriptedLLM{}
	svc, resumeID := newTestService(t, client)

	_, err := svc.Analyze(context.Background(), "user-1", resumeID, `  ""  `)
	if !errors.Is(err, ErrInvalidJobDescription) {
		t.Fatalf("expected ErrInvalidJobDescription, got %v", err)
	}
	if len(client.prompts) != 0 {
		t.Fatal("no model call expected for empty job description")
	}
}

func TestAnalyzeUnknownResume(t *testing.T) {
	svc, _ := newTestService(t, &scriptedLLM{})
	_, err := svc.Analyze(context.Background(), "user-1", "no-such-resume", "some job")
	if !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}

	// Another user's resume must look the same as a missing one.
	svc2, resumeID := newTestService(t, &scriptedLLM{})
	_, err = svc2.Analyze(context.Background(), "intruder", resumeID, "some job")
	if !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound for non-owner, got %v", err)
	}
}

func TestAnalyzeModelFailure(t *testing.T) {
	client := &scriptedLLM{err: errors.New("rate limited")}
	svc, resumeID := newTestService(t, client)

	_, err := svc.Analyze(context.Background(), "user-1", resumeID, "some job")
	if !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
}

func TestAnalyzeMalformedResponse(t *testing.T) {
	client := &scriptedLLM{responses: []string{"Sure! Here is my assessment of the resume."}}
	svc, resumeID := newTestService(t, client)

	_, err := svc.Analyze(context.Background(), "user-1", resumeID, "some job")
	if !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
}

func TestAnalyzeJobDescriptionGate(t *testing.T) {
	client := &scriptedLLM{responses: []string{"No"}}
	svc, resumeID := newTestService(t, client)
	svc.ContentCheck = true

	_, err := svc.Analyze(context.Background(), "user-1", resumeID, "lorem ipsum dolor")
	if !errors.Is(err, ErrInvalidJobDescription) {
		t.Fatalf("expected ErrInvalidJobDescription, got %v", err)
	}

	client = &scriptedLLM{responses: []string{"Yes", sampleResultJSON}}
	svc, resumeID = newTestService(t, client)
	svc.ContentCheck = true
	if _, err := svc.Analyze(context.Background(), "user-1", resumeID, "real job description"); err != nil {
		t.Fatalf("expected analysis to pass the gate, got %v", err)
	}
	if len(client.prompts) != 2 {
		t.Fatalf("expected gate call plus analysis call, got %d", len(client.prompts))
	}
}

func TestCreateGetRoundTrip(t *testing.T) {
	svc, resumeID := newTestService(t, &scriptedLLM{})

	result, err := ParseResult(sampleResultJSON)
	if err != nil {
		t.Fatalf("parse sample: %v", err)
	}

	created, err := svc.Create(context.Background(), "user-1", resumeID, "backend role", result)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := svc.Get(context.Background(), "user-1", created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Result.MatchScore != 82 || got.JobDescription != "backend role" {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if _, err := svc.Get(context.Background(), "intruder", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}
}

func TestCreateRejectsForeignResume(t *testing.T) {
	svc, resumeID := newTestService(t, &scriptedLLM{})
	_, err := svc.Create(context.Background(), "intruder", resumeID, "jd", Result{})
	if !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	svc, resumeID := newTestService(t, &scriptedLLM{})
	result, _ := ParseResult(sampleResultJSON)
	created, err := svc.Create(context.Background(), "user-1", resumeID, "original jd", result)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), "user-1", created.ID, "revised jd", nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.JobDescription != "revised jd" {
		t.Fatalf("job description = %q", updated.JobDescription)
	}
	if updated.Result.MatchScore != 82 {
		t.Fatal("result must survive a job-description-only update")
	}

	if _, err := svc.Update(context.Background(), "user-1", "no-such-id", "jd", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMissingAnalysis(t *testing.T) {
	svc, _ := newTestService(t, &scriptedLLM{})
	if err := svc.Delete(context.Background(), "user-1", "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByResumeNewestFirst(t *testing.T) {
	svc, resumeID := newTestService(t, &scriptedLLM{})
	base := time.Now().UTC()
	step := 0
	svc.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}

	if _, err := svc.Create(context.Background(), "user-1", resumeID, "first", Result{MatchScore: 1}); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-1", resumeID, "second", Result{MatchScore: 2}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	list, err := svc.ListByResume(context.Background(), "user-1", resumeID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 analyses, got %d", len(list))
	}
	if list[0].JobDescription != "second" {
		t.Fatalf("expected newest first, got %q", list[0].JobDescription)
	}
}

package analyses

import (
	"reflect"
	"strings"
	"testing"
)

const sampleResultJSON = `{
  "MatchScore": 82,
  "KeyStrengths": ["Go services", "Postgres"],
  "SkillsGap": ["Kubernetes"],
  "SuggestionsForImprovement": ["Quantify achievements"],
  "OverallAssessment": "Strong backend match.",
  "extraThingsToConsider": {"Location": "Remote friendly"}
}`

func TestParseResultFencedAndBareAreEqual(t *testing.T) {
	bare, err := ParseResult(sampleResultJSON)
	if err != nil {
		t.Fatalf("parse bare: %v", err)
	}

	for _, fenced := range []string{
		"```json\n" + sampleResultJSON + "\n```",
		"```\n" + sampleResultJSON + "\n```",
	} {
		got, err := ParseResult(fenced)
		if err != nil {
			t.Fatalf("parse fenced: %v", err)
		}
		if !reflect.DeepEqual(got, bare) {
			t.Fatalf("fenced parse diverged:\n got %+v\nwant %+v", got, bare)
		}
	}

	if bare.MatchScore != 82 {
		t.Fatalf("match score = %d", bare.MatchScore)
	}
	if bare.ExtraThingsToConsider["Location"] != "Remote friendly" {
		t.Fatalf("extra things = %v", bare.ExtraThingsToConsider)
	}
}

func TestParseResultRejectsUnknownFields(t *testing.T) {
	_, err := ParseResult(`{"MatchScore": 50, "Confidence": "high"}`)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if !strings.Contains(err.Error(), "decode analysis result") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseResultRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "```json\n```", "the resume looks fine to me"} {
		if _, err := ParseResult(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseResultDefaultsCollections(t *testing.T) {
	result, err := ParseResult(`{"MatchScore": 10}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if result.KeyStrengths == nil || result.SkillsGap == nil ||
		result.SuggestionsForImprovement == nil || result.ExtraThingsToConsider == nil {
		t.Fatalf("expected non-nil collections, got %+v", result)
	}
}

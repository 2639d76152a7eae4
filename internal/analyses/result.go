package analyses

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Result is the structured output of a resume analysis. Field names match
// the JSON the model is instructed to produce.
type Result struct {
	MatchScore                int               `json:"MatchScore"`
	KeyStrengths              []string          `json:"KeyStrengths"`
	SkillsGap                 []string          `json:"SkillsGap"`
	SuggestionsForImprovement []string          `json:"SuggestionsForImprovement"`
	OverallAssessment         string            `json:"OverallAssessment"`
	ExtraThingsToConsider     map[string]string `json:"extraThingsToConsider"`
}

// CleanJSON strips markdown code fences that models often wrap around JSON
// payloads, for example ```json ... ```.
func CleanJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}

// ParseResult decodes a model response into a Result. Decoding is strict:
// unknown fields are rejected so a drifting model schema surfaces as an
// error instead of silently dropping data.
func ParseResult(raw string) (Result, error) {
	cleaned := CleanJSON(raw)
	if cleaned == "" {
		return Result{}, fmt.Errorf("empty model response")
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(cleaned)))
	dec.DisallowUnknownFields()

	var result Result
	if err := dec.Decode(&result); err != nil {
		return Result{}, fmt.Errorf("decode analysis result: %w", err)
	}

	if result.KeyStrengths == nil {
		result.KeyStrengths = []string{}
	}
	if result.SkillsGap == nil {
		result.SkillsGap = []string{}
	}
	if result.SuggestionsForImprovement == nil {
		result.SuggestionsForImprovement = []string{}
	}
	if result.ExtraThingsToConsider == nil {
		result.ExtraThingsToConsider = map[string]string{}
	}
	return result, nil
}

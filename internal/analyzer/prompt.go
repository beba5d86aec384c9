package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
)

const (
	IndividualAnalysisType = "ux_review"
	BatchAnalysisType      = "batch_comparison"
)

const systemPrompt = `You are a senior product designer reviewing UI designs.
Answer with a single JSON object and nothing else.`

const individualPrompt = `Review the design %q.
%s
Return JSON with the keys:
  "summary": string,
  "strengths": array of strings,
  "issues": array of {"title": string, "severity": "low"|"medium"|"high", "recommendation": string},
  "confidence": number between 0 and 1.`

const batchPrompt = `Compare the following design variants and pick the strongest one.
%s
Return JSON with the keys:
  "summary": string,
  "ranking": array of upload ids, best first,
  "winner_upload_id": one of the upload ids above,
  "rationale": string,
  "confidence": number between 0 and 1.`

var ErrMalformedAnswer = errors.New("malformed model answer")

// Result is a parsed model answer. Payload keeps every key the model sent.
type Result struct {
	Confidence float64
	Winner     string
	Payload    map[string]any
}

func buildIndividualPrompt(u domain.Upload) string {
	source := "The design image is attached."
	if u.SourceURL != nil {
		source = "The design is published at " + *u.SourceURL + "."
	}
	return fmt.Sprintf(individualPrompt, u.FileName, source)
}

func buildBatchPrompt(uploads []domain.Upload, analyses map[string]domain.IndividualAnalysis) string {
	var sb strings.Builder
	for _, u := range uploads {
		fmt.Fprintf(&sb, "- upload id %s, file %q", u.ID, u.FileName)
		if a, ok := analyses[u.ID]; ok {
			if summary, ok := a.Results["summary"].(string); ok && summary != "" {
				fmt.Fprintf(&sb, ", individual review: %s", summary)
			}
			fmt.Fprintf(&sb, ", confidence %.2f", a.Confidence)
		}
		sb.WriteString("\n")
	}
	return fmt.Sprintf(batchPrompt, strings.TrimRight(sb.String(), "\n"))
}

// parseResult decodes the JSON object in answer. Models sometimes wrap it in
// a markdown fence or prose, so the outermost braces are located first.
func parseResult(answer string) (*Result, error) {
	start := strings.Index(answer, "{")
	end := strings.LastIndex(answer, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object", ErrMalformedAnswer)
	}

	payload := map[string]any{}
	if err := json.Unmarshal([]byte(answer[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnswer, err)
	}

	res := &Result{Payload: payload}
	for _, key := range []string{"confidence", "confidence_score"} {
		if v, ok := payload[key].(float64); ok {
			res.Confidence = clamp(v)
			break
		}
	}
	if w, ok := payload["winner_upload_id"].(string); ok {
		res.Winner = w
	}
	return res, nil
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

package recommend

import (
	"errors"
	"regexp"
	"strings"

	"github.com/goccy/go-json"

	"github.com/bilmem-net/ai-hediye/internal/domain/entity"
)

var (
	ErrEmptyResponse = errors.New("no content received from model")
	ErrParseResponse = errors.New("failed to parse AI response")
)

var fencePattern = regexp.MustCompile("```json\\n?|\\n?```")

// StripFences removes markdown code fences the model sometimes wraps JSON in.
func StripFences(content string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(content, ""))
}

// ParseCandidates decodes the model output. It accepts a bare JSON array or
// an object whose first array-valued field, in document order, holds the
// candidates. An object without such a field yields no candidates.
func ParseCandidates(content string) ([]entity.Candidate, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyResponse
	}
	cleaned := StripFences(content)

	var list []entity.Candidate
	if err := json.Unmarshal([]byte(cleaned), &list); err == nil {
		return list, nil
	}

	var obj json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return nil, errors.Join(ErrParseResponse, err)
	}
	fields, err := orderedFields(obj)
	if err != nil {
		return nil, errors.Join(ErrParseResponse, err)
	}
	for _, raw := range fields {
		if len(raw) == 0 || raw[0] != '[' {
			continue
		}
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, errors.Join(ErrParseResponse, err)
		}
		return list, nil
	}
	return []entity.Candidate{}, nil
}

// orderedFields returns the values of a JSON object in document order.
func orderedFields(obj json.RawMessage) ([]json.RawMessage, error) {
	dec := json.NewDecoder(strings.NewReader(string(obj)))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("expected a JSON array or object")
	}
	var out []json.RawMessage
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, json.RawMessage(strings.TrimSpace(string(v))))
	}
	return out, nil
}

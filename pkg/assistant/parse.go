package assistant

import (
	"encoding/json"

	"storesetup-backend/model"
)

// Reply is one structured assistant turn: conversational text plus a
// typed action. Every turn carries exactly one action; "none" means the
// turn is purely conversational.
type Reply struct {
	Message string         `json:"message"`
	Action  model.AIAction `json:"action"`
}

// ParseReply enforces the response contract on raw model output. It
// never fails: unparseable output degrades to the raw text with a
// "none" action, so a bad model turn never surfaces as an error.
func ParseReply(raw string) *Reply {
	region, found := ExtractJSONObject(raw)
	if !found {
		return fallbackReply(raw)
	}

	var parsed struct {
		Message string          `json:"message"`
		Action  *model.AIAction `json:"action"`
	}
	if err := json.Unmarshal([]byte(region), &parsed); err != nil {
		return fallbackReply(raw)
	}
	if parsed.Message == "" && parsed.Action == nil {
		return fallbackReply(raw)
	}

	reply := &Reply{Message: parsed.Message}
	if parsed.Action == nil || parsed.Action.Type == "" {
		reply.Action = model.AIAction{Type: model.ActionNone}
	} else {
		reply.Action = *parsed.Action
	}
	return reply
}

func fallbackReply(raw string) *Reply {
	return &Reply{
		Message: raw,
		Action:  model.AIAction{Type: model.ActionNone},
	}
}

// ExtractJSONObject returns the first top-level {...} region in s,
// matching braces while skipping string literals and escapes. Quotes
// are tracked from the start of the input, so a brace quoted in prose
// before the object never opens the match early.
func ExtractJSONObject(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if inString {
				continue
			}
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if inString || start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

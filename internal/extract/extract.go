// Package extract locates a JSON payload embedded in free-form model output.
// Models wrap payloads in prose or code fences, and truncated responses are
// common, so extraction runs in two phases: a strict parse of the first
// balanced object, then a single best-effort repair pass.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Result is the tagged outcome of an extraction attempt. Deciding what a
// failure means (fallback content, template outline) is the caller's job.
type Result struct {
	OK      bool
	Payload string // raw JSON object when OK
	Reason  string // failure reason when not OK
}

func parsed(payload string) Result { return Result{OK: true, Payload: payload} }

func failed(reason string) Result { return Result{Reason: reason} }

// Decode unmarshals the extracted payload into v.
func (r Result) Decode(v any) error {
	return json.Unmarshal([]byte(r.Payload), v)
}

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// JSON extracts the first JSON object from text. Candidates are tried in
// order: fenced code blocks, then the first balanced object anywhere in the
// text. Each candidate gets a strict parse and, failing that, one repair
// pass. Malformed input never panics.
func JSON(text string) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return failed("empty input")
	}

	for _, m := range fencedJSON.FindAllStringSubmatch(text, -1) {
		if r := tryCandidate(m[1]); r.OK {
			return r
		}
	}

	candidate, found := firstObject(text)
	if !found {
		return failed("no JSON object found")
	}
	if r := tryCandidate(candidate); r.OK {
		return r
	}
	return failed("payload is not valid JSON and could not be repaired")
}

func tryCandidate(candidate string) Result {
	if json.Valid([]byte(candidate)) {
		return parsed(candidate)
	}
	repaired := repair(candidate)
	if json.Valid([]byte(repaired)) {
		return parsed(repaired)
	}
	return failed("invalid candidate")
}

// firstObject returns the substring from the first '{' through its matching
// brace. If the object never closes (truncated response) the tail of the text
// is returned for the repair pass.
func firstObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return text[start:], true
}

// repair closes whatever the model left open: an unterminated string, a
// trailing comma, unbalanced brackets. It does not attempt to fix anything
// structural beyond that; a second failure is final.
func repair(s string) string {
	var stack []byte
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}':
			if len(stack) > 0 && stack[len(stack)-1] == '{' {
				stack = stack[:len(stack)-1]
			}
		case ']':
			if len(stack) > 0 && stack[len(stack)-1] == '[' {
				stack = stack[:len(stack)-1]
			}
		}
	}

	out := strings.TrimRight(s, " \t\r\n")
	if inString {
		out += `"`
	} else {
		out = strings.TrimSuffix(out, ",")
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			out += "}"
		} else {
			out += "]"
		}
	}
	return out
}

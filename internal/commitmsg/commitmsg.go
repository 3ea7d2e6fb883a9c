// Package commitmsg provides commit message parsing utilities.
package commitmsg

import (
	"regexp"
	"strings"
)

// Message represents a parsed commit message.
type Message struct {
	Raw      string
	Subject  string
	Body     string
	Trailers map[string]string
}

var trailerPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9-]*):\s+(.*)$`)

// Parse splits a raw commit message into subject, body and trailers.
// The subject is the first line; the body is everything after the
// first blank line. Trailers are "Key: value" lines forming the final
// paragraph, as written by git and Gerrit tooling (Signed-off-by,
// Change-Id, and so on).
func Parse(raw string) Message {
	result := Message{
		Raw:      raw,
		Trailers: make(map[string]string),
	}

	text := strings.TrimRight(raw, "\n")
	if text == "" {
		return result
	}

	lines := strings.Split(text, "\n")
	result.Subject = lines[0]

	rest := lines[1:]
	for len(rest) > 0 && strings.TrimSpace(rest[0]) == "" {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return result
	}
	result.Body = strings.Join(rest, "\n")

	for _, line := range lastParagraph(rest) {
		if match := trailerPattern.FindStringSubmatch(line); match != nil {
			result.Trailers[match[1]] = match[2]
		}
	}

	return result
}

// HasTrailer returns true if the message has the specified trailer key.
func (m Message) HasTrailer(key string) bool {
	_, ok := m.Trailers[key]
	return ok
}

// Trailer returns the value of a trailer and whether it exists.
func (m Message) Trailer(key string) (string, bool) {
	value, ok := m.Trailers[key]
	return value, ok
}

// String returns the original raw message.
func (m Message) String() string {
	return m.Raw
}

// lastParagraph returns the lines after the final blank line.
func lastParagraph(lines []string) []string {
	start := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			start = i + 1
		}
	}
	if start >= len(lines) {
		return nil
	}
	return lines[start:]
}

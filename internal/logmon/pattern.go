package logmon

import (
	"fmt"
	"regexp"
	"strings"
)

// Source selects which Client.txt line format the tailer recognizes.
// Exactly one source is active per tailer.
type Source string

const (
	// SourceGenerating matches instance-generation lines, which carry
	// the area id (or, on older clients, the quoted display name):
	//   ... Generating level 4 area "1_1_2" with seed 1497418925
	SourceGenerating Source = "generating"

	// SourceEntered matches the chat-log entry lines, which only carry
	// the display name:
	//   ... : You have entered The Coast.
	SourceEntered Source = "entered"
)

var sourcePatterns = map[Source]*regexp.Regexp{
	SourceGenerating: regexp.MustCompile(`Generating level \d+ area "([^"]+)"`),
	SourceEntered:    regexp.MustCompile(`: You have entered (.+)\.\s*$`),
}

// patternFor returns the recognition pattern for a source.
func patternFor(s Source) (*regexp.Regexp, error) {
	p, ok := sourcePatterns[s]
	if !ok {
		return nil, fmt.Errorf("unknown event source %q", s)
	}
	return p, nil
}

// extract applies the pattern to one log line and returns the raw
// identifier it carries, if any.
func extract(p *regexp.Regexp, line string) (string, bool) {
	m := p.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

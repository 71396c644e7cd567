package engine

import (
	"fmt"
	"regexp"
)

// markerPattern matches a line consisting of optional leading whitespace,
// the marker prefix, then the branch name token. Case-insensitive, applied
// to every line of the candidate text independently.
func markerPattern(prefix string) (*regexp.Regexp, error) {
	pattern := fmt.Sprintf(`(?im)^\s*%s(\S+)$`, regexp.QuoteMeta(prefix))
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid marker prefix %q: %w", prefix, err)
	}
	return re, nil
}

// MarkerExtractor decides whether a commit carries an embedded branch-name
// marker. The commit message is checked before the attached note; a commit
// whose message matches uses the message's name even when the note names
// something else. A missing note degrades to empty text.
type MarkerExtractor struct {
	backend Backend
	pattern *regexp.Regexp
}

// NewMarkerExtractor builds an extractor for the given marker prefix.
func NewMarkerExtractor(backend Backend, prefix string) (*MarkerExtractor, error) {
	pattern, err := markerPattern(prefix)
	if err != nil {
		return nil, err
	}
	return &MarkerExtractor{backend: backend, pattern: pattern}, nil
}

// Extract returns the branch name embedded in the commit, if any.
func (m *MarkerExtractor) Extract(commit *Commit) (string, bool, error) {
	note, err := m.backend.ReadNote(commit.Hash)
	if err != nil {
		return "", false, fmt.Errorf("failed to read note for %s: %w", commit.Hash, err)
	}

	for _, content := range []string{commit.Message, note} {
		if match := m.pattern.FindStringSubmatch(content); match != nil {
			return match[1], true, nil
		}
	}
	return "", false, nil
}

// Package customdict persists user supplied dictionary lines that are
// merged into the lexicon at startup and whenever they change.
package customdict

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/turkmorph/turkmorph"
)

// Key is the bucket name (bolt) and set key (Redis) holding the lines.
const Key = "custom_dict"

// Store is a set of dictionary lines.
type Store interface {
	// Add inserts a line; adding a present line is a no-op.
	Add(ctx context.Context, line string) error
	// Remove deletes a line; removing an absent line is a no-op.
	Remove(ctx context.Context, line string) error
	// All returns every stored line in sorted order.
	All(ctx context.Context) ([]string, error)
	Close() error
}

// Validate parses line and returns it trimmed. Stores call it before
// writing so that a stored line always loads.
func Validate(line string) (string, error) {
	if _, err := turkmorph.ParseLine(line); err != nil {
		return "", fmt.Errorf("custom dictionary: %w", err)
	}
	return trim(line), nil
}

// Lexicon loads every line of s into a lexicon.
func Lexicon(ctx context.Context, s Store) (*turkmorph.RootLexicon, error) {
	lines, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return turkmorph.LoadLines(lines...)
}

func trim(line string) string {
	return strings.TrimSpace(line)
}

func sorted(lines []string) []string {
	sort.Strings(lines)
	return lines
}

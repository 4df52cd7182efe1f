// Package slug derives URL identifiers from wedding titles.
package slug

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Make lowercases the title, drops apostrophes and collapses every other
// non-alphanumeric run into a single hyphen, so "John & Jane's Wedding"
// becomes "john-janes-wedding".
func Make(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r == '\'' || r == '’':
			// apostrophes vanish instead of splitting the word
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Exists reports whether a slug is already taken.
type Exists func(ctx context.Context, slug string) (bool, error)

// Unique returns the first free slug for title, resolving collisions with a
// numeric suffix: base, base-1, base-2, ...
func Unique(ctx context.Context, title string, exists Exists) (string, error) {
	base := Make(title)
	if base == "" {
		base = "wedding"
	}

	candidate := base
	for i := 0; ; i++ {
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

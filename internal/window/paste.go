package window

import (
	"net/url"
	"strings"
)

// splitPaths splits pasted text into path words the way terminal emulators
// emit dropped files: whitespace separated, optionally single or double
// quoted, with backslash escapes, or as file:// URIs.
func splitPaths(text string) []string {
	var (
		words   []string
		cur     strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	flush := func() {
		if inWord {
			words = append(words, fromURI(cur.String()))
			cur.Reset()
			inWord = false
		}
	}

	for _, r := range text {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\\':
			escaped = true
			inWord = true
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}

	// An unterminated quote means this is not a path list.
	if quote != 0 {
		return nil
	}
	flush()
	return words
}

// fromURI converts a file:// URI to a local path. Other words are returned
// unchanged.
func fromURI(word string) string {
	if !strings.HasPrefix(word, "file://") {
		return word
	}
	u, err := url.Parse(word)
	if err != nil || u.Path == "" {
		return word
	}
	return u.Path
}

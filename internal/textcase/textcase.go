// Package textcase provides the Unicode case folding shared by the stop-word
// filter and the frequency counter.
//
// Folding goes through golang.org/x/text/cases rather than strings.ToLower so
// context-sensitive mappings such as the Greek final sigma come out right. A
// cases.Caser carries state, so a Folder must not be shared between
// goroutines; Lower is the convenience form for one-off calls.
package textcase

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Folder lowercases strings with a reusable caser.
type Folder struct {
	caser cases.Caser
}

// NewFolder returns a Folder using language-neutral lowercasing.
func NewFolder() *Folder {
	return &Folder{caser: cases.Lower(language.Und)}
}

// Lower returns the lowercase form of s.
func (f *Folder) Lower(s string) string {
	if isLowerASCII(s) {
		return s
	}
	return f.caser.String(s)
}

// Lower lowercases s with a fresh caser.
func Lower(s string) string {
	return NewFolder().Lower(s)
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || ('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

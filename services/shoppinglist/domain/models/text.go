package models

import "unicode/utf8"

// Length bounds, counted in runes.
const (
	MaxNameLength     = 200
	MaxQuantityLength = 100
	MaxNotesLength    = 500
)

// OptionalText normalises optional free text: nil and "" both become nil.
func OptionalText(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

// RuneLen returns the length of s in runes.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

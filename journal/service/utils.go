package service

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToTitle normalizes a theme name for storage and comparison.
func ToTitle(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

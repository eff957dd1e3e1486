package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NamingPolicy is the immutable rule configuration for a run.
type NamingPolicy struct {
	// ClassPrefixes holds the single-character prefixes accepted for class and struct names.
	ClassPrefixes []string
	// BoolPrefix is required at the start of every variable declared as bool.
	BoolPrefix string
	// CheckFreeFunctions extends the function rule to functions declared outside a class.
	CheckFreeFunctions bool
}

// DefaultNamingPolicy returns the Unreal Engine convention.
func DefaultNamingPolicy() NamingPolicy {
	return NamingPolicy{
		ClassPrefixes: []string{"A", "U", "F", "E", "I"},
		BoolPrefix:    "b",
	}
}

// HasClassPrefix reports whether name starts with one of the class prefixes
// followed by an uppercase letter, so FVector is prefixed and Foo is not.
func (p NamingPolicy) HasClassPrefix(name string) bool {
	for _, prefix := range p.ClassPrefixes {
		if prefix == "" || !strings.HasPrefix(name, prefix) {
			continue
		}

		r, _ := utf8.DecodeRuneInString(name[len(prefix):])
		if r != utf8.RuneError && unicode.IsUpper(r) {
			return true
		}
	}

	return false
}

package domain

import (
	"strings"

	m "github.com/mouse-blink/namecheck/internal/model"
)

const (
	ignoreDirective     = "namecheck:ignore"
	ignoreFileDirective = "namecheck:ignore-file"
)

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

// ignores matches either the rule's category (class, function, variable,
// boolean) or the rule name itself.
func (r ignoreRule) ignores(rule m.Rule) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	if _, ok := r.names[rule.Category()]; ok {
		return true
	}

	_, ok := r.names[string(rule)]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreDirective reads a namecheck directive out of comment text. The
// second result is true for file-wide directives.
func parseIgnoreDirective(commentText string) (ignoreRule, bool, bool) {
	s := strings.TrimSpace(commentText)
	if strings.HasPrefix(s, "//") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "//"))
	} else if strings.HasPrefix(s, "/*") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))
	} else {
		s = strings.TrimSpace(strings.TrimPrefix(s, "*"))
	}

	fileWide := false

	var rest string

	switch {
	case strings.HasPrefix(s, ignoreFileDirective):
		fileWide = true
		rest = strings.TrimPrefix(s, ignoreFileDirective)
	case strings.HasPrefix(s, ignoreDirective):
		rest = strings.TrimPrefix(s, ignoreDirective)
	default:
		return ignoreRule{}, false, false
	}

	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return ignoreRule{}, false, false
	}

	rest = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), "*/"))
	if rest == "" {
		return ignoreRule{all: true}, fileWide, true
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, fileWide, true
}

type ignoreIndex struct {
	file ignoreRule
	line map[int]ignoreRule
}

func (idx ignoreIndex) ignores(line int, rule m.Rule) bool {
	if idx.file.ignores(rule) {
		return true
	}

	return idx.line[line].ignores(rule)
}

// buildIgnoreIndex collects directives by 1-based line. A directive on a
// comment-only line targets the next line; a trailing one targets its own.
func buildIgnoreIndex(lines []string) ignoreIndex {
	idx := ignoreIndex{line: make(map[int]ignoreRule)}

	for i, text := range lines {
		if !strings.Contains(text, ignoreDirective) {
			continue
		}

		comment := text
		target := i + 2

		if !isCommentLine(text) {
			_, comment = splitComment(text)
			target = i + 1
		}

		rule, fileWide, ok := parseIgnoreDirective(comment)
		if !ok {
			continue
		}

		if fileWide {
			mergeIgnoreRule(&idx.file, rule)
			continue
		}

		current := idx.line[target]
		mergeIgnoreRule(&current, rule)
		idx.line[target] = current
	}

	return idx
}

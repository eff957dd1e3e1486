package domain

import (
	"slices"
	"strings"
)

// FrameKind tags a tracked brace-delimited block.
type FrameKind int

// Frame kinds. frameNone doubles as "nothing pending".
const (
	frameNone FrameKind = iota
	FrameClass
	FrameFunction
)

func (k FrameKind) String() string {
	switch k {
	case FrameClass:
		return "class"
	case FrameFunction:
		return "function"
	default:
		return "none"
	}
}

// Frame is an open class or function body together with the brace depth it
// opened at. The frame closes once the depth counter drops below Depth.
type Frame struct {
	Kind  FrameKind
	Depth int
}

// ScopeQuery describes where a line sits, as of before its own braces apply.
type ScopeQuery struct {
	InClass    bool
	InFunction bool
}

// IsMember reports whether a declaration here belongs to a class body directly.
func (q ScopeQuery) IsMember() bool {
	return q.InClass && !q.InFunction
}

// Tracker infers class and function scopes from brace counting alone.
//
// Untracked blocks (if, for, namespaces, enums, initialiser lists) only move
// the depth counter, so they pass through without disturbing the frames that
// enclose them.
type Tracker struct {
	frames  []Frame
	depth   int
	pending FrameKind
}

// NewTracker returns a tracker positioned at the start of a file.
func NewTracker() *Tracker {
	return &Tracker{}
}

// BeginFile drops all state left over from a previous file.
func (t *Tracker) BeginFile() {
	t.frames = t.frames[:0]
	t.depth = 0
	t.pending = frameNone
}

// Depth returns the current brace depth.
func (t *Tracker) Depth() int {
	return t.depth
}

// Frames returns a copy of the open frames, innermost last.
func (t *Tracker) Frames() []Frame {
	return slices.Clone(t.frames)
}

// Query reports the current scope without consuming a line.
func (t *Tracker) Query() ScopeQuery {
	var q ScopeQuery

	for _, f := range t.frames {
		switch f.Kind {
		case FrameClass:
			q.InClass = true
		case FrameFunction:
			q.InFunction = true
		}
	}

	return q
}

// ObserveLine returns the scope the line starts in, then applies the line's
// braces. Comment lines leave the tracker untouched.
func (t *Tracker) ObserveLine(line string) ScopeQuery {
	q := t.Query()
	if isCommentLine(line) {
		return q
	}

	switch {
	case classPattern.MatchString(line):
		t.pending = FrameClass
	case q.IsMember() && matchFunction(line) != nil:
		t.pending = FrameFunction
	}

	t.commit(codePart(line))

	return q
}

func (t *Tracker) commit(code string) {
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '{':
			t.depth++
			if t.pending != frameNone {
				t.push(t.pending)
				t.pending = frameNone
			}
		case '}':
			t.closeBrace()
		case ';':
			t.pending = frameNone
		}
	}
}

func (t *Tracker) push(kind FrameKind) {
	// Only member functions are tracked.
	if kind == FrameFunction && len(t.frames) > 0 && t.frames[len(t.frames)-1].Kind != FrameClass {
		return
	}

	t.frames = append(t.frames, Frame{Kind: kind, Depth: t.depth})
}

func (t *Tracker) closeBrace() {
	if t.depth == 0 {
		t.frames = t.frames[:0]
		return
	}

	t.depth--

	for len(t.frames) > 0 && t.frames[len(t.frames)-1].Depth > t.depth {
		t.frames = t.frames[:len(t.frames)-1]
	}
}

func isCommentLine(line string) bool {
	s := strings.TrimSpace(line)

	return strings.HasPrefix(s, "//") || strings.HasPrefix(s, "/*") || strings.HasPrefix(s, "*")
}

// codePart returns the line with string and character literals and any
// trailing comment removed.
func codePart(line string) string {
	code, _ := splitComment(line)
	return code
}

// splitComment separates the code of a line from its comments. Block comments
// closed on the same line are cut out and scanning resumes after them; an
// unclosed one runs to the end of the line. Literal contents are dropped from
// the code half.
func splitComment(line string) (string, string) {
	var b, comment strings.Builder

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			comment.WriteString(line[i:])
			return b.String(), comment.String()
		case c == '/' && i+1 < len(line) && line[i+1] == '*':
			end := strings.Index(line[i+2:], "*/")
			if end < 0 {
				comment.WriteString(line[i:])
				return b.String(), comment.String()
			}

			comment.WriteString(line[i : i+end+4])
			b.WriteByte(' ')

			i += end + 3
		case c == '"' || c == '\'':
			i = skipLiteral(line, i)
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), comment.String()
}

func skipLiteral(line string, start int) int {
	quote := line[start]

	for i := start + 1; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case quote:
			return i
		}
	}

	return len(line)
}

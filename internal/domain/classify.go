package domain

import "regexp"

// DeclarationKind is the syntactic category of a recognised declaration.
type DeclarationKind int

// Declaration kinds.
const (
	DeclClass DeclarationKind = iota
	DeclFunction
	DeclVariable
)

func (k DeclarationKind) String() string {
	switch k {
	case DeclClass:
		return "class"
	case DeclFunction:
		return "function"
	default:
		return "variable"
	}
}

// Declaration is one declaration recognised on a line. For classes TypeName
// holds the keyword used (class or struct).
type Declaration struct {
	Kind     DeclarationKind
	TypeName string
	Name     string
}

const (
	// identifier plus scope, template and pointer/reference punctuation, no spaces
	typeToken  = `([A-Za-z_][\w:<>*&,]*)`
	identToken = `([A-Za-z_]\w*)`
)

var (
	classPattern = regexp.MustCompile(
		`^\s*(class|struct)\s+(?:[A-Z0-9_]+_API\s+)?` + identToken)
	functionPattern = regexp.MustCompile(
		`^\s*(?:(?:virtual|inline|static|const|constexpr|explicit|FORCEINLINE)\s+)*` +
			typeToken + `\s+[*&]*` + identToken + `\s*\(`)
	variablePattern = regexp.MustCompile(
		`^\s*(?:(?:const|static|mutable|constexpr)\s+)*` +
			typeToken + `\s+[*&]*` + identToken + `\s*;`)
)

// keywords never stand for a type or a declared name.
var keywords = map[string]struct{}{
	"break": {}, "case": {}, "class": {}, "co_await": {}, "co_return": {}, "co_yield": {},
	"const": {}, "constexpr": {}, "continue": {}, "default": {}, "delete": {}, "do": {},
	"else": {}, "enum": {}, "explicit": {}, "extern": {}, "for": {}, "friend": {},
	"goto": {}, "if": {}, "inline": {}, "mutable": {}, "namespace": {}, "new": {},
	"operator": {}, "private": {}, "protected": {}, "public": {}, "return": {},
	"sizeof": {}, "static": {}, "struct": {}, "switch": {}, "template": {}, "throw": {},
	"typedef": {}, "typename": {}, "union": {}, "using": {}, "virtual": {}, "volatile": {},
	"while": {},
}

func isKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

func matchClass(line string) *Declaration {
	sm := classPattern.FindStringSubmatch(line)
	if sm == nil {
		return nil
	}

	return &Declaration{Kind: DeclClass, TypeName: sm[1], Name: sm[2]}
}

func matchFunction(line string) *Declaration {
	return matchTyped(functionPattern, DeclFunction, line)
}

func matchVariable(line string) *Declaration {
	return matchTyped(variablePattern, DeclVariable, line)
}

func matchTyped(re *regexp.Regexp, kind DeclarationKind, line string) *Declaration {
	sm := re.FindStringSubmatch(line)
	if sm == nil || isKeyword(sm[1]) || isKeyword(sm[2]) {
		return nil
	}

	return &Declaration{Kind: kind, TypeName: sm[1], Name: sm[2]}
}

// Classify recognises the declarations on a line. Every category is tried;
// each yields at most one declaration. Function declarations are reported
// only inside a class body unless freeFunctions is set, and never inside a
// function body.
func Classify(line string, scope ScopeQuery, freeFunctions bool) []Declaration {
	if isCommentLine(line) {
		return nil
	}

	var decls []Declaration

	if d := matchClass(line); d != nil {
		decls = append(decls, *d)
	}

	if !scope.InFunction && (scope.InClass || freeFunctions) {
		if d := matchFunction(line); d != nil {
			decls = append(decls, *d)
		}
	}

	if d := matchVariable(line); d != nil {
		decls = append(decls, *d)
	}

	return decls
}

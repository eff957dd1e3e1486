package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	m "github.com/mouse-blink/namecheck/internal/model"
)

var (
	pascalCase = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	camelCase  = regexp.MustCompile(`^[a-z][A-Za-z0-9]*$`)
)

// RuleEngine applies a NamingPolicy to recognised declarations.
type RuleEngine struct {
	policy m.NamingPolicy
}

// NewRuleEngine creates a RuleEngine for the given policy.
func NewRuleEngine(policy m.NamingPolicy) *RuleEngine {
	return &RuleEngine{policy: policy}
}

// Classify recognises the declarations on line under the engine's policy.
func (e *RuleEngine) Classify(line string, scope ScopeQuery) []Declaration {
	return Classify(line, scope, e.policy.CheckFreeFunctions)
}

// Evaluate checks a declaration against the policy. The returned violations
// carry Rule and Message only; the caller fills in file and line.
func (e *RuleEngine) Evaluate(decl Declaration, scope ScopeQuery) []m.Violation {
	switch decl.Kind {
	case DeclClass:
		return e.evaluateClass(decl)
	case DeclFunction:
		return e.evaluateFunction(decl)
	case DeclVariable:
		return e.evaluateVariable(decl, scope)
	default:
		return nil
	}
}

func (e *RuleEngine) evaluateClass(decl Declaration) []m.Violation {
	kind := "Class"
	if decl.TypeName == "struct" {
		kind = "Struct"
	}

	if !e.policy.HasClassPrefix(decl.Name) {
		return []m.Violation{{
			Rule: m.RuleClassPrefix,
			Message: fmt.Sprintf("%s '%s' should start with one of %s",
				kind, decl.Name, strings.Join(e.policy.ClassPrefixes, ", ")),
		}}
	}

	if !startsUpper(decl.Name) {
		return []m.Violation{{
			Rule:    m.RuleClassCase,
			Message: fmt.Sprintf("%s '%s' should be PascalCase", kind, decl.Name),
		}}
	}

	return nil
}

func (e *RuleEngine) evaluateFunction(decl Declaration) []m.Violation {
	if startsUpper(decl.Name) {
		return nil
	}

	return []m.Violation{{
		Rule:    m.RuleFunctionCase,
		Message: fmt.Sprintf("Function '%s' should be PascalCase", decl.Name),
	}}
}

func (e *RuleEngine) evaluateVariable(decl Declaration, scope ScopeQuery) []m.Violation {
	var out []m.Violation

	isBoolean := decl.TypeName == "bool"
	isMember := scope.IsMember()
	hasBoolPrefix := strings.HasPrefix(decl.Name, e.policy.BoolPrefix)

	if isBoolean && !hasBoolPrefix {
		out = append(out, m.Violation{
			Rule: m.RuleBoolPrefix,
			Message: fmt.Sprintf("Boolean variable '%s' should start with '%s'",
				decl.Name, e.policy.BoolPrefix),
		})
	}

	if isMember {
		// bIsAlive: the prefix is lowercase by convention, PascalCase applies after it.
		subject := decl.Name
		if isBoolean && hasBoolPrefix && len(decl.Name) > len(e.policy.BoolPrefix) {
			subject = decl.Name[len(e.policy.BoolPrefix):]
		}

		if !pascalCase.MatchString(subject) {
			out = append(out, m.Violation{
				Rule:    m.RuleMemberCase,
				Message: fmt.Sprintf("Member variable '%s' should be PascalCase", decl.Name),
			})
		}

		return out
	}

	if !camelCase.MatchString(decl.Name) {
		out = append(out, m.Violation{
			Rule:    m.RuleLocalCase,
			Message: fmt.Sprintf("Local variable '%s' should be camelCase", decl.Name),
		})
	}

	return out
}

func startsUpper(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

package model

import "fmt"

// Rule identifies the naming rule a violation was raised by.
type Rule string

const (
	// RuleClassPrefix fires when a class or struct name lacks a recognised prefix.
	RuleClassPrefix Rule = "class-prefix"
	// RuleClassCase fires when a class or struct name does not start uppercase.
	RuleClassCase Rule = "class-case"
	// RuleFunctionCase fires when a member function name does not start uppercase.
	RuleFunctionCase Rule = "function-case"
	// RuleBoolPrefix fires when a bool variable lacks the boolean prefix.
	RuleBoolPrefix Rule = "bool-prefix"
	// RuleMemberCase fires when a member variable is not PascalCase.
	RuleMemberCase Rule = "member-case"
	// RuleLocalCase fires when a local variable is not camelCase.
	RuleLocalCase Rule = "local-case"
)

// Category groups rules by the kind of declaration they apply to.
func (r Rule) Category() string {
	switch r {
	case RuleClassPrefix, RuleClassCase:
		return "class"
	case RuleFunctionCase:
		return "function"
	case RuleBoolPrefix:
		return "boolean"
	default:
		return "variable"
	}
}

// Violation is a single naming-rule failure tied to a file and 1-based line.
type Violation struct {
	File    Path   `yaml:"file"`
	Line    int    `yaml:"line"`
	Rule    Rule   `yaml:"rule"`
	Message string `yaml:"message"`
}

// String renders the violation as "<file>:<line> <message>".
func (v Violation) String() string {
	return fmt.Sprintf("%s:%d %s", v.File, v.Line, v.Message)
}

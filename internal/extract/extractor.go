package extract

import (
	"fmt"
	"regexp"
	"strings"

	"cqlex/internal/domain"
)

// Extractor recovers test-case records from Go test source following the
// dialect's table convention. It never fails hard: structural misses yield
// empty results and the scan moves on to the next candidate.
type Extractor struct {
	dialect    Dialect
	classifier *Classifier

	nameField  *regexp.Regexp
	exprRaw    *regexp.Regexp
	exprQuoted *regexp.Regexp
	expected   *regexp.Regexp
	table      *regexp.Regexp
	allFuncs   *regexp.Regexp
}

// NewExtractor compiles the dialect's field and declaration patterns.
func NewExtractor(d Dialect) *Extractor {
	handle := regexp.QuoteMeta(d.WrapperHandle)
	return &Extractor{
		dialect:    d,
		classifier: NewClassifier(d),
		nameField: regexp.MustCompile(fmt.Sprintf(
			`%s:\s*"([^"]*)"`, regexp.QuoteMeta(d.NameField))),
		exprRaw: regexp.MustCompile(fmt.Sprintf(
			"%s:\\s*`([^`]*)`", regexp.QuoteMeta(d.ExprField))),
		exprQuoted: regexp.MustCompile(fmt.Sprintf(
			`%s:\s*"((?:[^"\\]|\\.)*)"`, regexp.QuoteMeta(d.ExprField))),
		expected: regexp.MustCompile(fmt.Sprintf(
			`%s:\s*`, regexp.QuoteMeta(d.ExpectedField))),
		table: regexp.MustCompile(fmt.Sprintf(
			`%s\s*:=\s*\[\]struct\s*\{[^}]+\}\s*\{`, regexp.QuoteMeta(d.TableVar))),
		allFuncs: regexp.MustCompile(fmt.Sprintf(
			`func\s+(%s\w+)\s*\(%s\s+\*testing\.T\)`, regexp.QuoteMeta(d.FuncPrefix), handle)),
	}
}

// Classifier exposes the extractor's value classifier.
func (e *Extractor) Classifier() *Classifier { return e.classifier }

// ExtractCase pulls name, expression and expected value out of one balanced
// case block. ok is false when the name or expression field is missing; a
// missing expected field is not an error and leaves a Null value.
func (e *Extractor) ExtractCase(block string) (domain.TestCase, bool) {
	var tc domain.TestCase

	if m := e.nameField.FindStringSubmatch(block); m != nil {
		tc.Name = m[1]
	}

	// Raw (backtick) expressions are preferred; tables quote multi-line CQL
	// that way. Escaped double-quoted strings are the fallback.
	if m := e.exprRaw.FindStringSubmatch(block); m != nil {
		tc.CQL = m[1]
	} else if m := e.exprQuoted.FindStringSubmatch(block); m != nil {
		tc.CQL = m[1]
	}

	// An empty name or expression counts as absent.
	if tc.Name == "" || tc.CQL == "" {
		return domain.TestCase{}, false
	}

	if loc := e.expected.FindStringIndex(block); loc != nil {
		raw := block[loc[1]:e.expectedEnd(block, loc[1])]
		raw = strings.TrimSuffix(strings.TrimSpace(raw), ",")
		tc.Expected = e.classifier.Classify(raw)
	}

	return tc, true
}

// expectedEnd scans forward from start for the end of the expected value.
// Parenthesis and brace depth are tracked independently; the value ends at a
// closing brace at brace depth zero, or at a top-level comma followed by a
// known field label or the block's closing brace. The scan is what allows
// the value itself to contain commas, nested calls and nested brace
// literals without them being mistaken for field separators.
func (e *Extractor) expectedEnd(block string, start int) int {
	parenDepth, braceDepth := 0, 0
	for i := start; i < len(block); i++ {
		switch block[i] {
		case '(':
			parenDepth++
		case ')':
			parenDepth--
		case '{':
			braceDepth++
		case '}':
			if braceDepth == 0 {
				return i
			}
			braceDepth--
		case ',':
			if parenDepth == 0 && braceDepth == 0 {
				rest := strings.TrimLeft(block[i+1:], " \t\r\n")
				if strings.HasPrefix(rest, "}") || e.startsWithField(rest) {
					return i
				}
			}
		}
	}
	return len(block)
}

func (e *Extractor) startsWithField(s string) bool {
	for _, label := range e.dialect.NextFields {
		if strings.HasPrefix(s, label) {
			return true
		}
	}
	return false
}

// ExtractFunction collects the cases of one named test function in source
// order. The result is empty when the function, its case table, or any
// balanced structure around them is missing.
func (e *Extractor) ExtractFunction(src, funcName string) []domain.TestCase {
	funcDecl := regexp.MustCompile(fmt.Sprintf(
		`func\s+%s\s*\(%s\s+\*testing\.T\)\s*\{`,
		regexp.QuoteMeta(funcName), regexp.QuoteMeta(e.dialect.WrapperHandle)))
	loc := funcDecl.FindStringIndex(src)
	if loc == nil {
		return nil
	}
	funcStart := loc[1]

	tloc := e.table.FindStringIndex(src[funcStart:])
	if tloc == nil {
		return nil
	}
	arrayStart := funcStart + tloc[1]

	// The table pattern ends on the literal's opening brace, so the walk
	// starts at depth 1 and stops on the literal's closing brace.
	depth := 1
	pos := arrayStart
	for depth > 0 && pos < len(src) {
		switch src[pos] {
		case '{':
			depth++
		case '}':
			depth--
		}
		pos++
	}
	if depth != 0 {
		return nil
	}
	arrayContent := src[arrayStart : pos-1]

	var cases []domain.TestCase
	cursor := 0
	for {
		start, end, ok := FindBalancedBlock(arrayContent, cursor)
		if !ok {
			break
		}
		// Blocks that fail extraction are skipped, not substituted.
		if tc, ok := e.ExtractCase(arrayContent[start:end]); ok {
			cases = append(cases, tc)
		}
		cursor = end
	}
	return cases
}

// ListFunctions returns the names of all test functions with the recognized
// harness signature, in declaration order, without duplicates.
func (e *Extractor) ListFunctions(src string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range e.allFuncs.FindAllStringSubmatch(src, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// ExtractFile runs ExtractFunction over every test function in the source
// and keeps only functions that yielded at least one case, in declaration
// order.
func (e *Extractor) ExtractFile(src string) []domain.FunctionCases {
	var functions []domain.FunctionCases
	for _, name := range e.ListFunctions(src) {
		cases := e.ExtractFunction(src, name)
		if len(cases) > 0 {
			functions = append(functions, domain.FunctionCases{Function: name, Cases: cases})
		}
	}
	return functions
}

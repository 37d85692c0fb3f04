package syntax

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	mdast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FixtureInputFence is the fence language of a fixture's input tree.
const FixtureInputFence = "tree"

// AssertionKind is the fence language of a fixture assertion.
type AssertionKind string

// Enumeration of assertion kinds.
const (
	// The analyzed tree, in s-expression form.
	AssertAST AssertionKind = "ast"

	// A substring of the fatal error message.
	AssertCompileError AssertionKind = "compile-error"

	// One substring per line, each matching the warning at the same index.
	// An empty fence asserts that there are no warnings.
	AssertWarnings AssertionKind = "warnings"
)

// Assertion is a single expectation attached to a fixture.
type Assertion struct {
	Kind    AssertionKind
	Content string

	// The parsed content of an AST assertion.
	Datum *Datum
}

// Fixture is a test case extracted from a Markdown document: a heading of the
// form "Test: name" followed by a tree fence and its assertion fences.
type Fixture struct {
	Name       string
	Input      string
	Assertions []Assertion
}

// ExtractFixtures parses a Markdown document and extracts all of its
// fixtures.
func ExtractFixtures(markdown string) ([]Fixture, error) {
	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var fixtures []Fixture
	var current *Fixture

	finish := func() error {
		if current == nil {
			return nil
		}

		if current.Input == "" {
			return fmt.Errorf("test '%s' has no input fence", current.Name)
		} else if len(current.Assertions) == 0 {
			return fmt.Errorf("test '%s' has no assertion fences", current.Name)
		}

		fixtures = append(fixtures, *current)
		return nil
	}

	err := mdast.Walk(doc, func(node mdast.Node, entering bool) (mdast.WalkStatus, error) {
		if !entering {
			return mdast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *mdast.Heading:
			heading := nodeText(n, source)
			if !strings.HasPrefix(heading, "Test: ") {
				return mdast.WalkContinue, nil
			}

			if err := finish(); err != nil {
				return mdast.WalkStop, err
			}

			current = &Fixture{Name: strings.TrimPrefix(heading, "Test: ")}
		case *mdast.FencedCodeBlock:
			language := string(n.Language(source))
			content := strings.TrimRight(fenceContent(n, source), "\n")

			if language == "" {
				return mdast.WalkContinue, nil
			} else if current == nil {
				return mdast.WalkStop, fmt.Errorf("%s fence found outside of test case", language)
			}

			switch kind := AssertionKind(language); {
			case language == FixtureInputFence:
				if current.Input != "" {
					return mdast.WalkStop, fmt.Errorf("multiple input fences in test '%s'", current.Name)
				}

				current.Input = content
			case kind == AssertAST:
				d, err := ReadDatum(content)
				if err != nil {
					return mdast.WalkStop, fmt.Errorf("test '%s': bad ast assertion: %w", current.Name, err)
				}

				current.Assertions = append(current.Assertions, Assertion{Kind: kind, Content: content, Datum: d})
			case kind == AssertCompileError, kind == AssertWarnings:
				current.Assertions = append(current.Assertions, Assertion{Kind: kind, Content: content})
			default:
				return mdast.WalkStop, fmt.Errorf("unknown fence language '%s' in test '%s'", language, current.Name)
			}
		}

		return mdast.WalkContinue, nil
	})

	if err != nil {
		return nil, fmt.Errorf("error walking markdown: %w", err)
	}

	if err := finish(); err != nil {
		return nil, err
	}

	return fixtures, nil
}

// nodeText extracts the plain text content of a markdown node.
func nodeText(node mdast.Node, source []byte) string {
	var buf bytes.Buffer

	mdast.Walk(node, func(n mdast.Node, entering bool) (mdast.WalkStatus, error) {
		if t, ok := n.(*mdast.Text); ok && entering {
			buf.Write(t.Segment.Value(source))
		}

		return mdast.WalkContinue, nil
	})

	return buf.String()
}

// fenceContent extracts the content of a fenced code block.
func fenceContent(block *mdast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer

	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}

	return buf.String()
}

package syntax

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

const fence = "```"

func TestExtractFixtures(t *testing.T) {
	markdown := `# Literals

Some prose that is ignored.

## Test: small int
` + fence + `tree
(program (let x (int 5)))
` + fence + `
` + fence + `ast
(program (var x i8 (value i8 (int 5))))
` + fence + `

## Test: bad type
` + fence + `tree
(program (decl x foo))
` + fence + `
` + fence + `compile-error
unable to resolve type: foo
` + fence + `
` + fence + `warnings
` + fence + `
`

	fixtures, err := ExtractFixtures(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(fixtures), 2)

	small := fixtures[0]
	be.Equal(t, small.Name, "small int")
	be.Equal(t, small.Input, "(program (let x (int 5)))")
	be.Equal(t, len(small.Assertions), 1)
	be.Equal(t, small.Assertions[0].Kind, AssertAST)
	be.Equal(t, small.Assertions[0].Datum.String(), "(program (var x i8 (value i8 (int 5))))")

	bad := fixtures[1]
	be.Equal(t, bad.Name, "bad type")
	be.Equal(t, len(bad.Assertions), 2)
	be.Equal(t, bad.Assertions[0].Kind, AssertCompileError)
	be.Equal(t, bad.Assertions[0].Content, "unable to resolve type: foo")
	be.Equal(t, bad.Assertions[1].Kind, AssertWarnings)
	be.Equal(t, bad.Assertions[1].Content, "")
}

func TestExtractFixturesErrors(t *testing.T) {
	documents := map[string]string{
		"no input":      "## Test: a\n" + fence + "ast\n(program)\n" + fence + "\n",
		"no assertions": "## Test: a\n" + fence + "tree\n(program)\n" + fence + "\n",
		"outside test":  fence + "tree\n(program)\n" + fence + "\n",
		"unknown fence": "## Test: a\n" + fence + "tree\n(program)\n" + fence + "\n" + fence + "zzz\nx\n" + fence + "\n",
		"bad ast":       "## Test: a\n" + fence + "tree\n(program)\n" + fence + "\n" + fence + "ast\n(program\n" + fence + "\n",
		"two inputs": "## Test: a\n" + strings.Repeat(fence+"tree\n(program)\n"+fence+"\n", 2) +
			fence + "ast\n(program)\n" + fence + "\n",
	}

	for name, doc := range documents {
		_, err := ExtractFixtures(doc)
		if err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

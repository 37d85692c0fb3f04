package walk

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"tzc/syntax"
	"tzc/types"
)

func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.md"))
	be.Err(t, err, nil)
	be.True(t, len(paths) > 0)

	for _, path := range paths {
		buf, err := os.ReadFile(path)
		be.Err(t, err, nil)

		fixtures, err := syntax.ExtractFixtures(string(buf))
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}

		for _, fixture := range fixtures {
			t.Run(filepath.Base(path)+"/"+fixture.Name, func(t *testing.T) {
				runFixture(t, fixture)
			})
		}
	}
}

func runFixture(t *testing.T, fixture syntax.Fixture) {
	prog, err := syntax.ReadTree(fixture.Input)
	if err != nil {
		t.Fatalf("bad input tree: %v", err)
	}

	an, err := Analyze(prog, types.DefaultTarget)

	expectsError := false
	for _, a := range fixture.Assertions {
		if a.Kind == syntax.AssertCompileError {
			expectsError = true
		}
	}

	if err != nil && !expectsError {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, a := range fixture.Assertions {
		switch a.Kind {
		case syntax.AssertAST:
			be.Equal(t, syntax.Encode(an.Program).String(), a.Datum.String())
		case syntax.AssertCompileError:
			if err == nil {
				t.Fatalf("expected error containing %q", a.Content)
			} else if !strings.Contains(err.Error(), a.Content) {
				t.Errorf("expected error containing %q, got %q", a.Content, err.Error())
			}
		case syntax.AssertWarnings:
			var want []string
			if a.Content != "" {
				want = strings.Split(a.Content, "\n")
			}

			be.Equal(t, len(an.Warnings), len(want))
			for i := 0; i < len(want) && i < len(an.Warnings); i++ {
				if !strings.Contains(an.Warnings[i].Message, want[i]) {
					t.Errorf("warning %d: expected %q, got %q", i, want[i], an.Warnings[i].Message)
				}
			}
		}
	}
}

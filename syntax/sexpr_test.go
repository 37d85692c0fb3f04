package syntax

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestReadAtoms(t *testing.T) {
	d, err := ReadDatum("hello")
	be.Err(t, err, nil)
	be.Equal(t, d.Kind, DatumSymbol)
	be.Equal(t, d.Text, "hello")

	d, err = ReadDatum("-42")
	be.Err(t, err, nil)
	be.Equal(t, d.Kind, DatumInteger)
	be.Equal(t, d.Text, "-42")

	d, err = ReadDatum(`"a \"b\" \\ c\n"`)
	be.Err(t, err, nil)
	be.Equal(t, d.Kind, DatumString)
	be.Equal(t, d.Text, "a \"b\" \\ c\n")
}

func TestReadList(t *testing.T) {
	d, err := ReadDatum("(binary \"+\" (int 1) (int 2))")
	be.Err(t, err, nil)
	be.Equal(t, d.Head(), "binary")
	be.Equal(t, len(d.Items), 4)
	be.Equal(t, d.Items[2].Head(), "int")
	be.Equal(t, d.String(), `(binary "+" (int 1) (int 2))`)
}

func TestReadArrayAndMeta(t *testing.T) {
	d, err := ReadDatum("(for ^{line: 3, col: 5} [(range 1 10)] [i] (block))")
	be.Err(t, err, nil)
	be.Equal(t, len(d.Items), 4)
	be.Equal(t, d.Items[1].Kind, DatumArray)
	be.Equal(t, d.Items[2].Items[0].Text, "i")

	line, ok := d.Meta("line")
	be.True(t, ok)
	be.Equal(t, line.Text, "3")

	_, ok = d.Meta("missing")
	be.True(t, !ok)

	be.Equal(t, d.String(), "(^{line: 3, col: 5} for [(range 1 10)] [i] (block))")
}

func TestReadMetaLaterWins(t *testing.T) {
	d, err := ReadDatum("(x ^{a: 1} ^{a: 2, b: 3})")
	be.Err(t, err, nil)
	be.Equal(t, len(d.MetaKeys), 2)

	a, _ := d.Meta("a")
	be.Equal(t, a.Text, "2")
}

func TestReadComments(t *testing.T) {
	d, err := ReadDatum("; leading\n(a ; inner\n b)\n; trailing")
	be.Err(t, err, nil)
	be.Equal(t, d.String(), "(a b)")
}

func TestReadPositions(t *testing.T) {
	d, err := ReadDatum("(a\n  (b))")
	be.Err(t, err, nil)
	be.Equal(t, d.Line, 1)
	be.Equal(t, d.Col, 1)
	be.Equal(t, d.Items[1].Line, 2)
	be.Equal(t, d.Items[1].Col, 3)
}

func TestReadErrors(t *testing.T) {
	inputs := []string{
		"",
		"(a b",
		"(a) b",
		`"unterminated`,
		`"bad \q escape"`,
		"(a ^[b])",
		"{1: 2}",
		"(a *)",
	}

	for _, input := range inputs {
		_, err := ReadDatum(input)
		be.True(t, err != nil)
	}
}

package syntax

import (
	"fmt"
	"strings"
	"unicode"
)

// DatumKind is the kind of a Datum.
type DatumKind int

// Enumeration of datum kinds.
const (
	DatumSymbol DatumKind = iota
	DatumString
	DatumInteger
	DatumList
	DatumMap
	DatumArray
)

// Datum is a single s-expression value.
type Datum struct {
	Kind DatumKind

	// The text of an atom: a symbol name, the unescaped contents of a string,
	// or the digits (with an optional sign) of an integer.
	Text string

	// The elements of a list or array, or the values of a map.
	Items []*Datum

	// The keys of a map, parallel to Items.
	Keys []string

	// The metadata attached to a list by `^{key: value}`, as parallel slices.
	MetaKeys  []string
	MetaItems []*Datum

	// The 1-based line and column the datum starts at in its input.
	Line, Col int
}

// Symbol creates a new symbol datum.
func Symbol(name string) *Datum {
	return &Datum{Kind: DatumSymbol, Text: name}
}

// String creates a new string datum.
func String(value string) *Datum {
	return &Datum{Kind: DatumString, Text: value}
}

// Integer creates a new integer datum.
func Integer(value int64) *Datum {
	return &Datum{Kind: DatumInteger, Text: fmt.Sprint(value)}
}

// List creates a new list datum.
func List(items ...*Datum) *Datum {
	return &Datum{Kind: DatumList, Items: items}
}

// Array creates a new array datum.
func Array(items ...*Datum) *Datum {
	return &Datum{Kind: DatumArray, Items: items}
}

// Meta returns the metadata value for key attached to a list.
func (d *Datum) Meta(key string) (*Datum, bool) {
	for i, k := range d.MetaKeys {
		if k == key {
			return d.MetaItems[i], true
		}
	}

	return nil, false
}

// IsSymbol returns whether d is the symbol name.
func (d *Datum) IsSymbol(name string) bool {
	return d.Kind == DatumSymbol && d.Text == name
}

// Head returns the symbol naming a list form: the text of its first item if
// that item is a symbol.
func (d *Datum) Head() string {
	if d.Kind == DatumList && len(d.Items) > 0 && d.Items[0].Kind == DatumSymbol {
		return d.Items[0].Text
	}

	return ""
}

func (d *Datum) String() string {
	sb := &strings.Builder{}
	d.write(sb)
	return sb.String()
}

func (d *Datum) write(sb *strings.Builder) {
	switch d.Kind {
	case DatumSymbol, DatumInteger:
		sb.WriteString(d.Text)
	case DatumString:
		escaped := strings.ReplaceAll(d.Text, "\\", "\\\\")
		escaped = strings.ReplaceAll(escaped, "\"", "\\\"")
		escaped = strings.ReplaceAll(escaped, "\n", "\\n")
		escaped = strings.ReplaceAll(escaped, "\t", "\\t")
		sb.WriteString("\"" + escaped + "\"")
	case DatumList:
		sb.WriteByte('(')
		if len(d.MetaKeys) > 0 {
			writeMap(sb, "^{", d.MetaKeys, d.MetaItems)
			if len(d.Items) > 0 {
				sb.WriteByte(' ')
			}
		}
		writeItems(sb, d.Items)
		sb.WriteByte(')')
	case DatumArray:
		sb.WriteByte('[')
		writeItems(sb, d.Items)
		sb.WriteByte(']')
	case DatumMap:
		writeMap(sb, "{", d.Keys, d.Items)
	}
}

func writeItems(sb *strings.Builder, items []*Datum) {
	for i, item := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		item.write(sb)
	}
}

func writeMap(sb *strings.Builder, open string, keys []string, items []*Datum) {
	sb.WriteString(open)
	for i, key := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(key + ": ")
		items[i].write(sb)
	}
	sb.WriteByte('}')
}

// -----------------------------------------------------------------------------

// ReadDatum parses input as exactly one datum.  Comments run from `;` to the
// end of the line.
func ReadDatum(input string) (*Datum, error) {
	r := &reader{input: []rune(input), line: 1, col: 1}

	d, err := r.readDatum()
	if err != nil {
		return nil, err
	}

	r.skipSpace()
	if !r.atEOF() {
		return nil, r.errorf("expected end of input but got %q", r.peek())
	}

	return d, nil
}

// reader is a recursive-descent s-expression reader.
type reader struct {
	input     []rune
	pos       int
	line, col int
}

const eofRune = rune(0)

func (r *reader) atEOF() bool {
	return r.pos >= len(r.input)
}

func (r *reader) peek() rune {
	if r.atEOF() {
		return eofRune
	}

	return r.input[r.pos]
}

func (r *reader) advance() rune {
	c := r.peek()
	r.pos++

	if c == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}

	return c
}

func (r *reader) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%d:%d: %s", r.line, r.col, fmt.Sprintf(format, args...))
}

// skipSpace skips whitespace and comments.
func (r *reader) skipSpace() {
	for !r.atEOF() {
		c := r.peek()

		if c == ';' {
			for !r.atEOF() && r.peek() != '\n' {
				r.advance()
			}
		} else if unicode.IsSpace(c) {
			r.advance()
		} else {
			return
		}
	}
}

func (r *reader) readDatum() (*Datum, error) {
	r.skipSpace()
	line, col := r.line, r.col

	d, err := r.readUnpositioned()
	if err != nil {
		return nil, err
	}

	d.Line, d.Col = line, col
	return d, nil
}

func (r *reader) readUnpositioned() (*Datum, error) {
	c := r.peek()

	switch {
	case r.atEOF():
		return nil, r.errorf("unexpected end of input")
	case c == '(':
		r.advance()
		return r.readList()
	case c == '[':
		r.advance()
		items, err := r.readItems(']')
		if err != nil {
			return nil, err
		}

		return &Datum{Kind: DatumArray, Items: items}, nil
	case c == '{':
		r.advance()
		keys, items, err := r.readMapBody()
		if err != nil {
			return nil, err
		}

		return &Datum{Kind: DatumMap, Keys: keys, Items: items}, nil
	case c == '"':
		r.advance()
		return r.readString()
	case unicode.IsDigit(c), (c == '-' || c == '+') && r.pos+1 < len(r.input) && unicode.IsDigit(r.input[r.pos+1]):
		return r.readInteger(), nil
	case isSymbolStart(c):
		return r.readSymbol(), nil
	default:
		return nil, r.errorf("unexpected character %q", c)
	}
}

func (r *reader) readList() (*Datum, error) {
	d := &Datum{Kind: DatumList}

	for {
		r.skipSpace()

		switch r.peek() {
		case ')':
			r.advance()
			return d, nil
		case '^':
			r.advance()
			if r.peek() != '{' {
				return nil, r.errorf("expected '{' after '^'")
			}
			r.advance()

			keys, items, err := r.readMapBody()
			if err != nil {
				return nil, err
			}

			// Later metadata wins.
			for i, key := range keys {
				if j := indexOf(d.MetaKeys, key); j != -1 {
					d.MetaItems[j] = items[i]
				} else {
					d.MetaKeys = append(d.MetaKeys, key)
					d.MetaItems = append(d.MetaItems, items[i])
				}
			}
		default:
			if r.atEOF() {
				return nil, r.errorf("expected ')' but got end of input")
			}

			item, err := r.readDatum()
			if err != nil {
				return nil, err
			}

			d.Items = append(d.Items, item)
		}
	}
}

func (r *reader) readItems(closer rune) ([]*Datum, error) {
	var items []*Datum

	for {
		r.skipSpace()

		if r.peek() == closer {
			r.advance()
			return items, nil
		} else if r.atEOF() {
			return nil, r.errorf("expected %q but got end of input", closer)
		}

		item, err := r.readDatum()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}
}

// readMapBody reads `key: value, ...}` after the opening brace.
func (r *reader) readMapBody() ([]string, []*Datum, error) {
	var keys []string
	var items []*Datum

	for {
		r.skipSpace()

		if r.peek() == '}' {
			r.advance()
			return keys, items, nil
		}

		if !isSymbolStart(r.peek()) {
			return nil, nil, r.errorf("expected symbol for map key")
		}
		key := r.readSymbol().Text

		r.skipSpace()
		if r.peek() != ':' {
			return nil, nil, r.errorf("expected ':' after map key %s", key)
		}
		r.advance()

		value, err := r.readDatum()
		if err != nil {
			return nil, nil, err
		}

		keys = append(keys, key)
		items = append(items, value)

		r.skipSpace()
		if r.peek() == ',' {
			r.advance()
		} else if r.peek() != '}' {
			return nil, nil, r.errorf("expected ',' or '}' in map")
		}
	}
}

func (r *reader) readString() (*Datum, error) {
	sb := strings.Builder{}

	for {
		if r.atEOF() {
			return nil, r.errorf("unterminated string")
		}

		c := r.advance()
		switch c {
		case '"':
			return String(sb.String()), nil
		case '\\':
			switch esc := r.advance(); esc {
			case '"', '\\':
				sb.WriteRune(esc)
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case '0':
				sb.WriteRune(0)
			default:
				return nil, r.errorf("invalid escape sequence: \\%c", esc)
			}
		default:
			sb.WriteRune(c)
		}
	}
}

func (r *reader) readInteger() *Datum {
	start := r.pos
	if c := r.peek(); c == '+' || c == '-' {
		r.advance()
	}

	for unicode.IsDigit(r.peek()) {
		r.advance()
	}

	return &Datum{Kind: DatumInteger, Text: string(r.input[start:r.pos])}
}

func (r *reader) readSymbol() *Datum {
	start := r.pos
	for isSymbolChar(r.peek()) {
		r.advance()
	}

	return Symbol(string(r.input[start:r.pos]))
}

func isSymbolStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isSymbolChar(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '-' || c == '_'
}

func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}

	return -1
}

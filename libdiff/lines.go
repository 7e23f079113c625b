package libdiff

import (
	"bytes"
	"strings"

	"github.com/signadot/scorex/encode"
	"github.com/signadot/scorex/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (op Op) String() string {
	switch op {
	case Insert:
		return "+"
	case Delete:
		return "-"
	}
	return " "
}

type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, text := range splitLines(d.Text) {
			res = append(res, Line{Op: op, Text: text})
		}
	}
	return res
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Changed reports whether lines contains an insertion or deletion.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Docs diffs the re-indented encodings of a and b.
func Docs(a, b *ir.Node) ([]Line, error) {
	as, err := indented(a)
	if err != nil {
		return nil, err
	}
	bs, err := indented(b)
	if err != nil {
		return nil, err
	}
	return Lines(as, bs), nil
}

func indented(doc *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, encode.EncodeIndent(2)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package scorex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/scorex/ir"
)

const (
	tagScorePartwise = "score-partwise"
	tagScoreTimewise = "score-timewise"
	tagPartList      = "part-list"
	tagScorePart     = "score-part"
	tagPartGroup     = "part-group"
	tagPart          = "part"
	tagMeasure       = "measure"
	tagAttributes    = "attributes"
	tagNote          = "note"
	tagDirection     = "direction"
	tagDirectionType = "direction-type"
	tagStaff         = "staff"
)

// ScoreRoot returns the score-partwise element of doc.
func ScoreRoot(doc *ir.Node) (*ir.Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrStructure)
	}
	root := doc.RootElement()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrStructure)
	}
	switch root.Tag {
	case tagScorePartwise:
		return root, nil
	case tagScoreTimewise:
		return nil, fmt.Errorf("%w: %s documents are not supported, convert to %s", ErrStructure, tagScoreTimewise, tagScorePartwise)
	}
	return nil, fmt.Errorf("%w: missing %s root, found <%s>", ErrStructure, tagScorePartwise, root.Tag)
}

// MeasureNumber returns the leading integer of the measure's number
// attribute, or 0 when there is none.
func MeasureNumber(m *ir.Node) int {
	s := strings.TrimSpace(m.AttrOr("number", ""))
	end := 0
	if end < len(s) && (s[0] == '-' || s[0] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// sameNumber compares a number as written in the document with n.
func sameNumber(s string, n int) bool {
	s = strings.TrimSpace(s)
	if s == strconv.Itoa(n) {
		return true
	}
	v, err := strconv.Atoi(s)
	return err == nil && v == n
}

func isElem(n *ir.Node, tag string) bool {
	return n.Type == ir.ElementType && n.Tag == tag
}

// PartInfo describes a part for policies and listings.
type PartInfo struct {
	Index    int
	Total    int
	ID       string
	Name     string
	Staves   int
	Measures int
	First    string
	Last     string
}

// Parts describes the parts of doc in document order.
func Parts(doc *ir.Node) ([]PartInfo, error) {
	score, err := ScoreRoot(doc)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	if pl := score.Child(tagPartList); pl != nil {
		for _, sp := range pl.ChildrenByTag(tagScorePart) {
			name, _ := sp.ChildText("part-name")
			names[sp.AttrOr("id", "")] = name
		}
	}
	parts := score.ChildrenByTag(tagPart)
	res := make([]PartInfo, len(parts))
	for i, p := range parts {
		id := p.AttrOr("id", "")
		res[i] = partInfo(i, id, names[id], p)
		res[i].Total = len(parts)
	}
	return res, nil
}

func partInfo(i int, id, name string, part *ir.Node) PartInfo {
	info := PartInfo{Index: i, ID: id, Name: name, Staves: 1}
	measures := part.ChildrenByTag(tagMeasure)
	info.Measures = len(measures)
	if len(measures) != 0 {
		info.First = measures[0].AttrOr("number", "")
		info.Last = measures[len(measures)-1].AttrOr("number", "")
	}
	for _, m := range measures {
		for _, a := range m.ChildrenByTag(tagAttributes) {
			s, ok := a.ChildText("staves")
			if !ok {
				continue
			}
			if n, err := strconv.Atoi(s); err == nil && n > info.Staves {
				info.Staves = n
			}
		}
	}
	return info
}

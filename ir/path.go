package ir

import (
	"strconv"
)

// Path returns a debugging path for n such as
// /score-partwise/part[0]/measure[3], where indices count same tag
// element siblings.
func (n *Node) Path() string {
	if n.Parent == nil {
		if n.Type == DocumentType {
			return ""
		}
		return "/" + n.Tag
	}
	prefix := n.Parent.Path()
	switch n.Type {
	case ElementType:
	case TextType, CommentType, DirectiveType:
		return prefix + "/" + n.Tag + "[" + strconv.Itoa(n.ParentIndex) + "]"
	default:
		return prefix + "/?" + n.Tag
	}
	i, count := 0, 0
	for _, sib := range n.Parent.Children {
		if sib == n {
			i = count
		}
		if sib.Type == ElementType && sib.Tag == n.Tag {
			count++
		}
	}
	if count <= 1 {
		return prefix + "/" + n.Tag
	}
	return prefix + "/" + n.Tag + "[" + strconv.Itoa(i) + "]"
}

package workspace

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// Tree is an editable XML document.
type Tree interface {
	// FindAll returns every element with the given tag, in document order.
	FindAll(name string) []Node
	// CreateElement returns a detached element owned by this tree.
	CreateElement(name string) Node
	Serialize() (string, error)
}

// Node is a single element of a Tree.
type Node interface {
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	// Child returns the first direct child element with the given tag.
	Child(name string) (Node, bool)
	ClearChildren()
	AppendChild(child Node)
	String() string
}

// ErrNoRoot is returned when a document has no root element.
var ErrNoRoot = errors.New("document has no root element")

// newDocument returns a document that writes tabs and line breaks inside
// attribute values as character references, so they survive a round trip.
func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalAttrVal = true
	return doc
}

type xmlTree struct {
	doc *etree.Document
}

// ParseTree parses data into a Tree. Everything outside the elements,
// including the XML declaration, is kept for Serialize.
func ParseTree(data []byte) (Tree, error) {
	doc := newDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	if doc.Root() == nil {
		return nil, ErrNoRoot
	}
	return &xmlTree{doc: doc}, nil
}

func (t *xmlTree) FindAll(name string) []Node {
	var nodes []Node
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if el.Tag == name {
			nodes = append(nodes, &xmlNode{el: el})
		}
		for _, c := range el.ChildElements() {
			walk(c)
		}
	}
	walk(t.doc.Root())
	return nodes
}

func (t *xmlTree) CreateElement(name string) Node {
	return &xmlNode{el: etree.NewElement(name)}
}

func (t *xmlTree) Serialize() (string, error) {
	return t.doc.WriteToString()
}

type xmlNode struct {
	el *etree.Element
}

func (n *xmlNode) Attr(name string) (string, bool) {
	a := n.el.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

func (n *xmlNode) SetAttr(name, value string) {
	n.el.CreateAttr(name, value)
}

func (n *xmlNode) Child(name string) (Node, bool) {
	c := n.el.SelectElement(name)
	if c == nil {
		return nil, false
	}
	return &xmlNode{el: c}, true
}

func (n *xmlNode) ClearChildren() {
	for len(n.el.Child) > 0 {
		n.el.RemoveChildAt(len(n.el.Child) - 1)
	}
}

func (n *xmlNode) AppendChild(child Node) {
	c, ok := child.(*xmlNode)
	if !ok {
		panic(fmt.Sprintf("workspace: cannot append %T to an XML element", child))
	}
	n.el.AddChild(c.el)
}

func (n *xmlNode) String() string {
	doc := newDocument()
	doc.SetRoot(n.el.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return "<" + n.el.Tag + ">"
	}
	return s
}

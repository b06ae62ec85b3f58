package dom

import (
	"sort"
	"strings"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

// NewComment returns a comment node with its Data section filled.
func NewComment(data string, od *Node) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: od,
		Comment: &Comment{
			CharacterData: &CharacterData{
				Data:   data,
				Length: len(data),
			},
		}}
}

func NewTextNode(od *Node, text string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Text: &Text{
			CharacterData: &CharacterData{
				Data:   text,
				Length: len(text),
			},
		},
	}
}

func NewDocTypeNode(name, pub, sys string) *Node {
	return &Node{
		NodeType: DocumentTypeNode,
		NodeName: name,
		DocumentType: &DocumentType{
			Name:     name,
			PublicID: pub,
			SystemID: sys,
		},
	}
}

func NewDOMElement(od *Node, name string, namespace Namespace) *Node {
	// HTML element names are lowercase throughout the model; folding here
	// keeps tag scans exact-match no matter how callers spell the name.
	name = strings.ToLower(name)
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Element: &Element{
			NamespaceURI: namespace,
			LocalName:    name,
			HTMLElement:  NewHTMLElement(name),
		},
	}
	n.Element.Attributes = NewNamedNodeMap(map[string]*Attr{}, n)

	// An iframe gets a blank browsing context up front, the way about:blank
	// appears before any real content arrives. The inner document shares the
	// owner's event loop.
	if n.Element.HTMLElement.HTMLIFrame != nil {
		cd := newBlankDocument(loopOf(od))
		n.Element.HTMLElement.HTMLIFrame.ContentDocument = cd
		n.Element.HTMLElement.HTMLIFrame.ContentWindow = NewWindow(cd)
	}
	return n
}

// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	IsConnected                                                     bool
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	registeredObservers []*registeredObserver

	// Node types
	*Element
	*Text
	*Comment
	*Document
	*DocumentType
}

func serializeNodeType(node *Node, ident int) string {
	switch node.NodeType {
	case ElementNode:
		e := "<"
		switch node.Element.NamespaceURI {
		case Svgns:
			e += "svg "
		case Mathmlns:
			e += "math "
		}
		e += node.NodeName
		if node.Element.Attributes != nil && len(node.Element.Attributes.Attrs) != 0 {
			e += ">"
			keys := make([]string, 0, len(node.Element.Attributes.Attrs))
			for name := range node.Element.Attributes.Attrs {
				keys = append(keys, name)
			}
			sort.Strings(keys)
			spaces := "| "
			for i := 1; i < ident; i++ {
				spaces += "  "
			}
			for _, name := range keys {
				attr := node.Element.Attributes.Attrs[name]
				e += "\n" + spaces + name + "=\"" + attr.Value + "\""
			}
		} else {
			e += ">"
		}
		return e
	case TextNode:
		return "\"" + node.Text.Data + "\""
	case CommentNode:
		return "<!-- " + node.Comment.Data + " -->"
	case DocumentTypeNode:
		d := "<!DOCTYPE " + node.DocumentType.Name
		if len(node.DocumentType.PublicID) != 0 || len(node.DocumentType.SystemID) != 0 {
			d += " \"" + node.DocumentType.PublicID + "\""
			d += " \"" + node.DocumentType.SystemID + "\""
		}
		d += ">"
		return d
	case DocumentNode:
		return "#document"
	default:
		return ""
	}
}

func (n *Node) serialize(ident int) string {
	ser := serializeNodeType(n, ident+1) + "\n"
	if n.NodeType != DocumentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range n.ChildNodes {
		ser += child.serialize(ident + 1)
	}

	return ser
}

func (n *Node) String() string {
	return strings.TrimRight(n.serialize(0), "\n")
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

func (n *Node) Contains(on *Node) bool {
	for i := on; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

// GetElementsByTagName walks the subtree in document order collecting the
// elements whose name matches. "*" matches every element.
// https://dom.spec.whatwg.org/#dom-document-getelementsbytagname
func (n *Node) GetElementsByTagName(qualifiedName string) NodeList {
	var found NodeList
	var walk func(*Node)
	walk = func(c *Node) {
		for _, child := range c.ChildNodes {
			if child.NodeType == ElementNode && (qualifiedName == "*" || child.NodeName == qualifiedName) {
				found = append(found, child)
			}
			walk(child)
		}
	}
	walk(n)
	return found
}

func (n *Node) InsertBefore(on, child *Node) *Node {
	if child == nil {
		return n.AppendChild(on)
	}
	if on.ParentNode != nil {
		on.ParentNode.RemoveChild(on)
	}
	i := n.ChildNodes.Contains(child)
	if i == -1 {
		return nil
	}
	prev := child.PreviousSibling
	n.ChildNodes.WedgeIn(i, on)
	on.ParentNode = n
	on.PreviousSibling = prev
	on.NextSibling = child
	child.PreviousSibling = on
	if prev != nil {
		prev.NextSibling = on
	}
	if i == 0 {
		n.FirstChild = on
	}
	on.setConnected(n.NodeType == DocumentNode || n.IsConnected)
	queueTreeMutation(n, NodeList{on}, nil, prev, child)
	return on
}

// https://dom.spec.whatwg.org/#concept-node-append
func (n *Node) AppendChild(on *Node) *Node {
	if on.ParentNode != nil {
		on.ParentNode.RemoveChild(on)
	}
	prev := n.LastChild
	if prev != nil {
		on.PreviousSibling = prev
		prev.NextSibling = on
	}
	on.ParentNode = n
	on.NextSibling = nil
	n.LastChild = on
	if n.FirstChild == nil {
		n.FirstChild = on
	}
	n.ChildNodes = append(n.ChildNodes, on)
	on.setConnected(n.NodeType == DocumentNode || n.IsConnected)
	queueTreeMutation(n, NodeList{on}, nil, prev, nil)
	return on
}

func (n *Node) RemoveChild(child *Node) *Node {
	i := n.ChildNodes.Contains(child)
	if i == -1 {
		return nil
	}
	node := n.ChildNodes.Remove(i)
	prev, next := child.PreviousSibling, child.NextSibling
	if prev != nil {
		prev.NextSibling = next
	}
	if next != nil {
		next.PreviousSibling = prev
	}
	if n.FirstChild == child {
		n.FirstChild = next
	}
	if n.LastChild == child {
		n.LastChild = prev
	}
	child.ParentNode = nil
	child.PreviousSibling = nil
	child.NextSibling = nil
	child.setConnected(false)
	queueTreeMutation(n, nil, NodeList{node}, prev, next)
	return node
}

func (n *Node) setConnected(connected bool) {
	n.IsConnected = connected
	for _, child := range n.ChildNodes {
		child.setConnected(connected)
	}
}

// ownerDocumentNode resolves the document a node belongs to; a document node
// is its own owner.
func (n *Node) ownerDocumentNode() *Node {
	if n.NodeType == DocumentNode {
		return n
	}
	return n.OwnerDocument
}

func loopOf(od *Node) *EventLoop {
	if od != nil && od.Document != nil {
		return od.Document.Loop
	}
	return NewEventLoop()
}

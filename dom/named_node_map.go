package dom

import "strings"

func NewNamedNodeMap(attrs map[string]*Attr, oe *Node) *NamedNodeMap {
	a := make(map[string]*Attr, len(attrs))
	for k, v := range attrs {
		a[strings.ToLower(k)] = v
	}
	return &NamedNodeMap{
		Length:            len(a),
		Attrs:             a,
		AssociatedElement: oe,
	}
}

type NamedNodeMap struct {
	Length            int
	Attrs             map[string]*Attr
	AssociatedElement *Node
}

// Attribute names are lowercased on the way in and out; the model only
// serves HTML documents.
func (n *NamedNodeMap) GetNamedItem(qualifiedName string) *Attr {
	if v, ok := n.Attrs[strings.ToLower(qualifiedName)]; ok {
		return v
	}
	return nil
}

func (n *NamedNodeMap) SetNamedItem(attr *Attr) *Attr {
	if attr == nil {
		return nil
	}
	attr.OwnerElement = n.AssociatedElement
	name := strings.ToLower(attr.Name)
	old := n.Attrs[name]
	n.Attrs[name] = attr
	n.Length = len(n.Attrs)
	return old
}

func (n *NamedNodeMap) RemoveNamedItem(qualifiedName string) *Attr {
	name := strings.ToLower(qualifiedName)
	old, ok := n.Attrs[name]
	if !ok {
		return nil
	}
	delete(n.Attrs, name)
	n.Length = len(n.Attrs)
	old.OwnerElement = nil
	return old
}

package dom

import "sort"

type Namespace uint

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
)

// Element is https://dom.spec.whatwg.org/#interface-element
type Element struct {
	NamespaceURI          Namespace
	Prefix, LocalName, Id string
	Attributes            *NamedNodeMap

	*HTMLElement
}

func (e *Element) HasAttributes() bool {
	return e.Attributes != nil && len(e.Attributes.Attrs) > 0
}

func (e *Element) GetAttributeNames() []string {
	names := make([]string, 0, len(e.Attributes.Attrs))
	for name := range e.Attributes.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Element) GetAttribute(qualifiedName string) string {
	attr := e.Attributes.GetNamedItem(qualifiedName)
	if attr == nil {
		return ""
	}
	return attr.Value
}

func (e *Element) HasAttribute(qualifiedName string) bool {
	return e.Attributes.GetNamedItem(qualifiedName) != nil
}

// SetAttribute writes an attribute and queues an attribute mutation record
// for observers interested in them. Child-list observers never see it.
func (e *Element) SetAttribute(qualifiedName, value string) {
	owner := e.Attributes.AssociatedElement
	if attr := e.Attributes.GetNamedItem(qualifiedName); attr != nil {
		attr.Value = value
	} else {
		e.Attributes.SetNamedItem(NewAttr(qualifiedName, value, owner))
	}
	queueAttributeMutation(owner, qualifiedName)
}

func (e *Element) RemoveAttribute(qualifiedName string) {
	owner := e.Attributes.AssociatedElement
	if e.Attributes.RemoveNamedItem(qualifiedName) != nil {
		queueAttributeMutation(owner, qualifiedName)
	}
}

package dom

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	Namespace         Namespace
	Prefix, LocalName string
	Name, Value       string
	OwnerElement      *Node
	Specified         bool
}

func NewAttr(name, value string, owner *Node) *Attr {
	return &Attr{
		LocalName:    name,
		Name:         name,
		Value:        value,
		OwnerElement: owner,
		Specified:    true,
	}
}

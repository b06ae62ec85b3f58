package dom

func NewHTMLElement(name string) *HTMLElement {
	elem := &HTMLElement{}
	switch name {
	case "iframe":
		elem.HTMLIFrame = &HTMLIFrame{}
	case "body":
		elem.HTMLBody = &HTMLBody{}
	case "head":
		elem.HTMLHead = &HTMLHead{}
	}

	return elem
}

type HTMLElement struct {
	Title, Lang, Dir string
	Hidden           bool

	// Layout reads. A rendering engine would compute these from style and
	// content; the model carries them as plain fields so embedders and tests
	// can drive them.
	ScrollHeight int
	ClientHeight int

	*HTMLIFrame
	*HTMLBody
	*HTMLHead
}

// https://html.spec.whatwg.org/#the-iframe-element
type HTMLIFrame struct {
	Src, Srcdoc string

	// ContentDocument is nil when the inner document is not accessible, the
	// stand-in for a cross-origin frame.
	ContentDocument *HTMLDocument
	ContentWindow   *Window
}

type HTMLBody struct{}

type HTMLHead struct{}

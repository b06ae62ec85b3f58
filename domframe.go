package framesync

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/heathj/framesync/dom"
)

// DOMFrame adapts an iframe node to the Frame capability. The height lands
// in the element's height attribute as a bare integer, the same place the
// markup would carry it.
type DOMFrame struct {
	node *dom.Node
}

func NewDOMFrame(n *dom.Node) (*DOMFrame, error) {
	if n == nil || n.NodeType != dom.ElementNode || n.Element == nil ||
		n.Element.HTMLElement == nil || n.Element.HTMLElement.HTMLIFrame == nil {
		return nil, errors.New("node is not an iframe element")
	}
	return &DOMFrame{node: n}, nil
}

func (f *DOMFrame) Node() *dom.Node { return f.node }

func (f *DOMFrame) ContentWindow() *dom.Window {
	return f.node.Element.HTMLElement.HTMLIFrame.ContentWindow
}

func (f *DOMFrame) ContentHeight() (int, error) {
	cd := f.node.Element.HTMLElement.HTMLIFrame.ContentDocument
	if cd == nil {
		return 0, errors.New("frame content document is not accessible")
	}
	body := cd.Body
	if body == nil || body.Element == nil || body.Element.HTMLElement == nil {
		// Nothing parsed yet: reads as empty. The frame's load listener
		// corrects this once content arrives.
		return 0, nil
	}
	return body.Element.HTMLElement.ScrollHeight, nil
}

func (f *DOMFrame) SetHeight(height int) error {
	f.node.Element.SetAttribute("height", strconv.Itoa(height))
	return nil
}

var _ Frame = (*DOMFrame)(nil)

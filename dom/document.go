package dom

type DocumentReadyState string

const (
	Loading     DocumentReadyState = "loading"
	Interactive DocumentReadyState = "interactive"
	Complete    DocumentReadyState = "complete"
)

const (
	// DOMContentLoadedEvent fires on a document once its structural content
	// is parsed, independent of subresource loading.
	DOMContentLoadedEvent = "DOMContentLoaded"
	// LoadEvent fires on a window once its document has fully loaded.
	LoadEvent = "load"
)

// Document is https://dom.spec.whatwg.org/#interface-document
type Document struct {
	Type        string
	URL         string
	ContentType string

	// Loop is the event loop all work for this document runs on. Nested
	// browsing contexts share their owner's loop.
	Loop *EventLoop
}

// https://html.spec.whatwg.org/#the-document-object
type HTMLDocument struct {
	EventTarget
	ReadyState      DocumentReadyState
	Body            *Node
	DocumentElement *Node
	DefaultView     *Window

	*Node
}

func NewHTMLDocument() *HTMLDocument {
	return newHTMLDocument(NewEventLoop())
}

func newHTMLDocument(loop *EventLoop) *HTMLDocument {
	return &HTMLDocument{
		ReadyState: Loading,
		Node: &Node{
			NodeType: DocumentNode,
			NodeName: "#document",
			Document: &Document{Type: "html", ContentType: "text/html", Loop: loop},
		},
	}
}

// newBlankDocument scaffolds the html/body skeleton every blank browsing
// context starts with.
func newBlankDocument(loop *EventLoop) *HTMLDocument {
	d := newHTMLDocument(loop)
	htmlEl := NewDOMElement(d.Node, "html", Htmlns)
	body := NewDOMElement(d.Node, "body", Htmlns)
	d.Node.AppendChild(htmlEl)
	htmlEl.AppendChild(body)
	d.DocumentElement = htmlEl
	d.Body = body
	return d
}

func (d *HTMLDocument) CreateElement(localName string) *Node {
	return NewDOMElement(d.Node, localName, Htmlns)
}

func (d *HTMLDocument) CreateTextNode(data string) *Node {
	return NewTextNode(d.Node, data)
}

// FinishParsing drives the document through its lifecycle once the tree is
// built: ready state interactive and DOMContentLoaded first, then each
// frame's inner load, then complete and load on the document's own window.
// Each step is a separate task so listeners registered during one step see
// the mutations of the previous one delivered in between.
func (d *HTMLDocument) FinishParsing() {
	loop := d.Node.Document.Loop
	loop.QueueTask(func() {
		d.ReadyState = Interactive
		d.DispatchEvent(NewEvent(DOMContentLoadedEvent))
	})
	for _, frame := range d.GetElementsByTagName("iframe") {
		loop.QueueTask(func() {
			if frame.Element == nil || frame.Element.HTMLElement == nil {
				return
			}
			ifr := frame.Element.HTMLElement.HTMLIFrame
			if ifr == nil || ifr.ContentWindow == nil {
				return
			}
			ifr.ContentWindow.CompleteLoad()
		})
	}
	loop.QueueTask(func() {
		d.ReadyState = Complete
		if d.DefaultView != nil {
			d.DefaultView.DispatchEvent(NewEvent(LoadEvent))
		}
	})
	loop.Spin()
}

package dom

// Window is the browsing context a document is presented in.
// https://html.spec.whatwg.org/#window
type Window struct {
	EventTarget
	Document *HTMLDocument
}

func NewWindow(doc *HTMLDocument) *Window {
	w := &Window{Document: doc}
	if doc != nil {
		doc.DefaultView = w
	}
	return w
}

// CompleteLoad finishes the document's load: the ready state moves to
// complete and load fires on the window. Frame content that arrives
// asynchronously is completed by whoever drives it, usually the owner
// document's lifecycle or an embedder delivering late content.
func (w *Window) CompleteLoad() {
	if w.Document != nil {
		w.Document.ReadyState = Complete
	}
	w.DispatchEvent(NewEvent(LoadEvent))
}

package dom

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// ParseHTML builds a document from markup. Tokenizing and tree construction
// are x/net/html's; this walks its tree into the node model. The document
// comes back in the loading ready state with a window attached; FinishParsing
// drives the lifecycle events.
//
// An iframe carrying srcdoc gets its inner document parsed in place, still
// unloaded until the frame's load fires.
func ParseHTML(r io.Reader) (*HTMLDocument, error) {
	doc := NewHTMLDocument()
	NewWindow(doc)
	if err := parseInto(doc, r); err != nil {
		return nil, err
	}
	return doc, nil
}

func parseInto(doc *HTMLDocument, r io.Reader) error {
	root, err := html.Parse(r)
	if err != nil {
		return errors.Wrap(err, "parse html")
	}
	doc.Node.ChildNodes = nil
	doc.Node.FirstChild = nil
	doc.Node.LastChild = nil
	doc.Body = nil
	doc.DocumentElement = nil
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := convertNode(doc, doc.Node, c); err != nil {
			return err
		}
	}
	return nil
}

func convertNode(doc *HTMLDocument, parent *Node, src *html.Node) error {
	switch src.Type {
	case html.ElementNode:
		n := NewDOMElement(doc.Node, src.Data, namespaceOf(src.Namespace))
		for _, a := range src.Attr {
			n.Element.SetAttribute(a.Key, a.Val)
		}
		parent.AppendChild(n)
		switch src.Data {
		case "html":
			if doc.DocumentElement == nil {
				doc.DocumentElement = n
			}
		case "body":
			if doc.Body == nil {
				doc.Body = n
			}
		}
		if ifr := n.Element.HTMLElement.HTMLIFrame; ifr != nil {
			ifr.Src = n.Element.GetAttribute("src")
			ifr.Srcdoc = n.Element.GetAttribute("srcdoc")
			if ifr.Srcdoc != "" {
				if err := parseInto(ifr.ContentDocument, strings.NewReader(ifr.Srcdoc)); err != nil {
					return errors.Wrap(err, "parse frame srcdoc")
				}
			}
		}
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			if err := convertNode(doc, n, c); err != nil {
				return err
			}
		}
	case html.TextNode:
		parent.AppendChild(NewTextNode(doc.Node, src.Data))
	case html.CommentNode:
		parent.AppendChild(NewComment(src.Data, doc.Node))
	case html.DoctypeNode:
		parent.AppendChild(NewDocTypeNode(src.Data, "", ""))
	}
	return nil
}

func namespaceOf(ns string) Namespace {
	switch ns {
	case "svg":
		return Svgns
	case "math":
		return Mathmlns
	default:
		return Htmlns
	}
}

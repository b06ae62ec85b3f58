package framesync

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/framesync/dom"
)

func countBatches(entries []*logrus.Entry) int {
	n := 0
	for _, e := range entries {
		if e.Message == "mutation batch" {
			n++
		}
	}
	return n
}

func parseDoc(t *testing.T, markup string) *dom.HTMLDocument {
	t.Helper()
	doc, err := dom.ParseHTML(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func frameOf(t *testing.T, doc *dom.HTMLDocument, i int) *dom.Node {
	t.Helper()
	frames := doc.GetElementsByTagName("iframe")
	require.Greater(t, len(frames), i)
	return frames[i]
}

func setContentHeight(t *testing.T, frame *dom.Node, h int) {
	t.Helper()
	cd := frame.Element.HTMLElement.HTMLIFrame.ContentDocument
	require.NotNil(t, cd)
	require.NotNil(t, cd.Body)
	cd.Body.Element.HTMLElement.ScrollHeight = h
}

func height(frame *dom.Node) string {
	return frame.Element.GetAttribute("height")
}

func TestAttachResizesExistingFrame(t *testing.T) {
	doc := parseDoc(t, `<body><iframe></iframe></body>`)
	frame := frameOf(t, doc, 0)
	setContentHeight(t, frame, 300)

	Attach(doc)
	assert.Equal(t, "", height(frame), "nothing happens before the document is parsed")

	doc.FinishParsing()
	assert.Equal(t, "400", height(frame))
}

func TestAttachToParsedDocument(t *testing.T) {
	doc := parseDoc(t, `<body><iframe></iframe></body>`)
	doc.FinishParsing()
	frame := frameOf(t, doc, 0)
	setContentHeight(t, frame, 250)

	Attach(doc)
	assert.Equal(t, "350", height(frame))
}

func TestInsertedFrameResizedOnNextBatchThenOnLoad(t *testing.T) {
	doc := parseDoc(t, `<body></body>`)
	Attach(doc)
	doc.FinishParsing()

	frame := doc.CreateElement("iframe")
	setContentHeight(t, frame, 200)
	doc.Body.AppendChild(frame)
	assert.Equal(t, "", height(frame), "resize waits for the mutation batch")

	doc.Node.Document.Loop.Spin()
	assert.Equal(t, "300", height(frame))

	// content that finished loading after insertion re-triggers the resize
	setContentHeight(t, frame, 450)
	frame.Element.HTMLElement.HTMLIFrame.ContentWindow.CompleteLoad()
	assert.Equal(t, "550", height(frame))
}

func TestStaleWithoutMutation(t *testing.T) {
	doc := parseDoc(t, `<body><iframe></iframe></body>`)
	frame := frameOf(t, doc, 0)
	setContentHeight(t, frame, 200)

	Attach(doc)
	doc.FinishParsing()
	assert.Equal(t, "300", height(frame))

	// inner content grows with no structural change in the host document:
	// the height goes stale until something else triggers a scan
	setContentHeight(t, frame, 500)
	doc.Node.Document.Loop.Spin()
	assert.Equal(t, "300", height(frame))

	doc.Body.AppendChild(doc.CreateElement("div"))
	doc.Node.Document.Loop.Spin()
	assert.Equal(t, "600", height(frame))
}

func TestMultipleFramesResizedIndependently(t *testing.T) {
	doc := parseDoc(t, `<body><iframe></iframe><iframe></iframe></body>`)
	first := frameOf(t, doc, 0)
	second := frameOf(t, doc, 1)
	setContentHeight(t, first, 100)
	setContentHeight(t, second, 1200)

	Attach(doc)
	doc.FinishParsing()

	assert.Equal(t, "200", height(first))
	assert.Equal(t, "1300", height(second))
}

func TestInaccessibleFrameSkipped(t *testing.T) {
	doc := parseDoc(t, `<body><iframe></iframe><iframe></iframe></body>`)
	crossOrigin := frameOf(t, doc, 0)
	sameOrigin := frameOf(t, doc, 1)
	crossOrigin.Element.HTMLElement.HTMLIFrame.ContentDocument = nil
	setContentHeight(t, sameOrigin, 300)

	Attach(doc)
	doc.FinishParsing()

	assert.Equal(t, "", height(crossOrigin), "unreadable frame stays untouched")
	assert.Equal(t, "400", height(sameOrigin), "failure on one frame does not stop the scan")
}

func TestHeightWriteDoesNotRetriggerScan(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	doc := parseDoc(t, `<body><iframe></iframe></body>`)
	setContentHeight(t, frameOf(t, doc, 0), 300)

	Attach(doc, WithLogger(logger))
	doc.FinishParsing()

	batches := countBatches(hook.AllEntries())

	// the height attribute writes above queued no child-list records, so
	// spinning again delivers nothing
	doc.Node.Document.Loop.Spin()
	assert.Equal(t, batches, countBatches(hook.AllEntries()))
}

func TestSyncAllRescansEveryFrame(t *testing.T) {
	doc := parseDoc(t, `<body><iframe></iframe></body>`)
	existing := frameOf(t, doc, 0)
	setContentHeight(t, existing, 200)

	Attach(doc)
	doc.FinishParsing()
	assert.Equal(t, "300", height(existing))

	// a mutation anywhere resizes every frame, not just the added ones
	setContentHeight(t, existing, 800)
	added := doc.CreateElement("iframe")
	setContentHeight(t, added, 50)
	doc.Body.AppendChild(added)
	doc.Node.Document.Loop.Spin()

	assert.Equal(t, "900", height(existing))
	assert.Equal(t, "150", height(added))
}

func TestDetachStopsSyncing(t *testing.T) {
	doc := parseDoc(t, `<body><iframe></iframe></body>`)
	frame := frameOf(t, doc, 0)
	setContentHeight(t, frame, 100)

	s := Attach(doc)
	doc.FinishParsing()
	assert.Equal(t, "200", height(frame))

	s.Detach()
	setContentHeight(t, frame, 700)
	doc.Body.AppendChild(doc.CreateElement("div"))
	doc.Node.Document.Loop.Spin()
	assert.Equal(t, "200", height(frame))
}

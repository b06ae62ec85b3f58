// Package framesync keeps inline frames sized to their content. Whenever the
// host document mutates, every iframe's height is rewritten to its inner
// document's body scroll height plus a fixed margin; a frame whose content
// loads late is resized again on its own load.
package framesync

// HeightMargin is the fixed amount added on top of the inner body scroll
// height every time a frame is resized.
const HeightMargin = 100

// Frame is the capability surface a resize needs: one read of the inner
// document's content height and one write of the frame's own height. The dom
// adapter and the live browser backend both satisfy it.
type Frame interface {
	// ContentHeight returns the scroll height of the inner document's body.
	// It fails when the inner document is not accessible, which is how a
	// cross-origin frame presents.
	ContentHeight() (int, error)

	// SetHeight sets the frame's rendered height, in the host document's
	// layout units.
	SetHeight(height int) error
}

// Resize sets f's height to its content height plus HeightMargin. Running it
// again with unchanged content writes the same value; it never converges
// anywhere else.
func Resize(f Frame) error {
	h, err := f.ContentHeight()
	if err != nil {
		return err
	}
	return f.SetHeight(h + HeightMargin)
}

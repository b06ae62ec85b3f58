package browser

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/playwright-community/playwright-go"

	"github.com/heathj/framesync"
)

// Frame adapts an iframe element handle on a live page to the
// framesync.Frame capability. Same-origin frames only: the evaluations reach
// through contentDocument, which the browser refuses across origins, and
// that refusal surfaces here as an evaluate error.
type Frame struct {
	handle playwright.ElementHandle
}

func NewFrame(handle playwright.ElementHandle) *Frame {
	return &Frame{handle: handle}
}

func (f *Frame) ContentHeight() (int, error) {
	v, err := f.handle.Evaluate("el => el.contentDocument.body.scrollHeight")
	if err != nil {
		return 0, errors.Wrap(err, "read content height")
	}
	h, err := toInt(v)
	if err != nil {
		return 0, errors.Wrap(err, "read content height")
	}
	return h, nil
}

func (f *Frame) SetHeight(height int) error {
	_, err := f.handle.Evaluate(fmt.Sprintf("el => { el.height = %d; }", height))
	return errors.Wrap(err, "set height")
}

// toInt coerces the number the JS bridge hands back; integral results arrive
// as int, everything else as float64.
func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, errors.Errorf("unexpected evaluate result %T", v)
	}
}

var _ framesync.Frame = (*Frame)(nil)

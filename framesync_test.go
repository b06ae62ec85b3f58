package framesync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFrame struct {
	content int
	readErr error
	writes  []int
}

func (f *fakeFrame) ContentHeight() (int, error) {
	return f.content, f.readErr
}

func (f *fakeFrame) SetHeight(h int) error {
	f.writes = append(f.writes, h)
	return nil
}

func TestResizeAddsMargin(t *testing.T) {
	tests := []struct {
		name    string
		content int
		want    int
	}{
		{"empty", 0, 100},
		{"single pixel", 1, 101},
		{"typical", 300, 400},
		{"tall", 5000, 5100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFrame{content: tt.content}
			require.NoError(t, Resize(f))
			require.Len(t, f.writes, 1)
			assert.Equal(t, tt.want, f.writes[0])
		})
	}
}

func TestResizeIdempotent(t *testing.T) {
	f := &fakeFrame{content: 300}
	require.NoError(t, Resize(f))
	require.NoError(t, Resize(f))
	assert.Equal(t, []int{400, 400}, f.writes)
}

func TestResizeReadFailureWritesNothing(t *testing.T) {
	f := &fakeFrame{readErr: assert.AnError}
	assert.Error(t, Resize(f))
	assert.Empty(t, f.writes)
}

func TestFramesIndependent(t *testing.T) {
	a := &fakeFrame{content: 200}
	b := &fakeFrame{content: 900}
	require.NoError(t, Resize(a))
	require.NoError(t, Resize(b))
	assert.Equal(t, []int{300}, a.writes)
	assert.Equal(t, []int{1000}, b.writes)
}

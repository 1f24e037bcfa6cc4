package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolSharesMatchingBuffers(t *testing.T) {
	dev := newFakeDevice()
	pool := NewRenderBufferPool(dev)

	a := pool.Request(FormatDepth24Stencil8, 512, 512, 0)
	b := pool.Request(FormatDepth24Stencil8, 512, 512, 0)

	assert.Same(t, a.Buffer, b.Buffer, "matching storage shares one buffer")
	assert.Equal(t, 1, pool.Live())
	assert.Len(t, dev.liveRBs, 1)
}

func TestPoolKeysOnStorage(t *testing.T) {
	dev := newFakeDevice()
	pool := NewRenderBufferPool(dev)

	a := pool.Request(FormatDepth24Stencil8, 512, 512, 0)
	tests := []struct {
		name    string
		format  PixelFormat
		w, h    int
		samples int
	}{
		{"format", FormatDepth32F, 512, 512, 0},
		{"size", FormatDepth24Stencil8, 256, 512, 0},
		{"samples", FormatDepth24Stencil8, 512, 512, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pool.Request(tt.format, tt.w, tt.h, tt.samples)
			assert.NotSame(t, a.Buffer, s.Buffer)
			pool.Release(&s)
		})
	}
}

func TestPoolReleaseDestroysAtZero(t *testing.T) {
	dev := newFakeDevice()
	pool := NewRenderBufferPool(dev)

	a := pool.Request(FormatDepth32F, 128, 128, 0)
	b := pool.Request(FormatDepth32F, 128, 128, 0)
	require.Equal(t, 1, pool.Live())

	pool.Release(&a)
	assert.Equal(t, 1, pool.Live(), "still checked out by the second holder")
	assert.Len(t, dev.liveRBs, 1)

	pool.Release(&b)
	assert.Equal(t, 0, pool.Live())
	assert.Empty(t, dev.liveRBs, "buffer destroyed at last release")
}

func TestPoolReleaseZeroesSurface(t *testing.T) {
	dev := newFakeDevice()
	pool := NewRenderBufferPool(dev)

	s := pool.Request(FormatStencil8, 32, 32, 0)
	pool.Release(&s)
	assert.True(t, s.Empty())

	// Repeated release of the same variable is a no-op.
	pool.Release(&s)
	assert.Equal(t, 0, pool.Live())
}

func TestPoolReleaseEmptyAndForeign(t *testing.T) {
	dev := newFakeDevice()
	pool := NewRenderBufferPool(dev)

	var empty Surface
	pool.Release(&empty)
	pool.Release(nil)

	// A surface not backed by a pooled renderbuffer is ignored but zeroed.
	foreign := Surface{Buffer: newFakeBuffer(dev, 8, 8, FormatRGBA8)}
	pool.Release(&foreign)
	assert.True(t, foreign.Empty())
	assert.Equal(t, 0, pool.Live())
}

func TestPoolReacquireAfterDestroy(t *testing.T) {
	dev := newFakeDevice()
	pool := NewRenderBufferPool(dev)

	a := pool.Request(FormatDepth16, 64, 64, 0)
	first := a.Buffer
	pool.Release(&a)

	b := pool.Request(FormatDepth16, 64, 64, 0)
	assert.NotSame(t, first, b.Buffer, "destroyed buffers are not resurrected")
	assert.Equal(t, 1, pool.Live())
}

package render

// DepthBuffer groups the depth and stencil renderbuffers assigned to a
// framebuffer target. Which target gets which depth buffer is a pooling
// policy decided above this package; targets only attach and detach them.
//
// Either buffer may be nil: a pure-depth format has no stencil buffer, a
// packed depth-stencil format may present the same renderbuffer twice.
type DepthBuffer struct {
	depth   *RenderBuffer
	stencil *RenderBuffer
}

// NewDepthBuffer builds a DepthBuffer from its sub-buffers.
func NewDepthBuffer(depth, stencil *RenderBuffer) *DepthBuffer {
	return &DepthBuffer{depth: depth, stencil: stencil}
}

// Depth returns the depth sub-buffer, or nil.
func (d *DepthBuffer) Depth() *RenderBuffer { return d.depth }

// Stencil returns the stencil sub-buffer, or nil.
func (d *DepthBuffer) Stencil() *RenderBuffer { return d.stencil }

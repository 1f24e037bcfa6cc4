package render

import "github.com/DragonOgre/ogre/gl"

// RenderBuffer is a GL renderbuffer. Pooled render buffers back the
// transient attachments a FramebufferTarget needs but does not expose:
// depth, stencil, and the multisample colour buffer that serves as the
// resolve source.
type RenderBuffer struct {
	dev     Device
	obj     gl.Renderbuffer
	format  PixelFormat
	width   int
	height  int
	samples int
}

// NewRenderBuffer allocates a renderbuffer with the given storage. A samples
// count of zero allocates single-sample storage.
func NewRenderBuffer(dev Device, format PixelFormat, width, height, samples int) *RenderBuffer {
	obj := dev.CreateRenderbuffer()
	dev.BindRenderbuffer(gl.RENDERBUFFER, obj)
	dev.RenderbufferStorageMultisample(gl.RENDERBUFFER, samples, format.GLInternalFormat(), width, height)
	return &RenderBuffer{
		dev:     dev,
		obj:     obj,
		format:  format,
		width:   width,
		height:  height,
		samples: samples,
	}
}

func (r *RenderBuffer) Width() int            { return r.width }
func (r *RenderBuffer) Height() int           { return r.height }
func (r *RenderBuffer) Format() PixelFormat   { return r.format }
func (r *RenderBuffer) NativeFormat() gl.Enum { return r.format.GLInternalFormat() }

// Samples returns the multisample count of the storage (0 = single sample).
func (r *RenderBuffer) Samples() int { return r.samples }

// BindToFramebuffer attaches the renderbuffer to the currently bound
// framebuffer. Renderbuffers are flat, so zoffset is ignored.
func (r *RenderBuffer) BindToFramebuffer(attachment gl.Enum, zoffset int) {
	r.dev.FramebufferRenderbuffer(gl.FRAMEBUFFER, attachment, gl.RENDERBUFFER, r.obj)
}

// Destroy deletes the GL renderbuffer. The buffer must not be attached to
// any framebuffer when destroyed.
func (r *RenderBuffer) Destroy() {
	if r.obj.Valid() {
		r.dev.DeleteRenderbuffer(r.obj)
		r.obj = gl.Renderbuffer{}
	}
}

package render

import "github.com/DragonOgre/ogre/gl"

// Context identifies a live graphics context. GL object names are scoped to
// the context that created them; a FramebufferTarget records the Context it
// was built under and rebuilds itself when the current context differs.
//
// Context values are compared with ==, so implementations must be comparable
// (a pointer works well). nil means "no context".
type Context any

// Capabilities holds the device limits the render package depends on.
type Capabilities struct {
	// MaxColorAttachments is the number of simultaneous colour attachments
	// the device supports (GL_MAX_COLOR_ATTACHMENTS).
	MaxColorAttachments int

	// MaxSamples is the maximum multisample count (GL_MAX_SAMPLES).
	// Requested sample counts are clamped to this.
	MaxSamples int

	// Version is the {major, minor} GL version.
	Version [2]int
}

// HasDrawBuffers reports whether explicit draw-buffer and read-buffer
// configuration is available (GL 3.0 and later).
func (c Capabilities) HasDrawBuffers() bool {
	return c.Version[0] >= 3
}

// Device is the graphics device a FramebufferTarget renders through. It
// extends the raw GL call surface with context identity and the single
// context-aware framebuffer destroy path.
type Device interface {
	gl.Functions

	// CurrentContext returns the context current on the calling goroutine,
	// or nil if none.
	CurrentContext() Context

	// Capabilities returns the device limits. The values are fixed for the
	// lifetime of the device.
	Capabilities() Capabilities

	// DestroyFramebuffer destroys a framebuffer created under ctx. This is
	// the only valid way to delete a framebuffer whose owning context is
	// still alive; a raw DeleteFramebuffer is reserved for context-loss
	// cleanup where the context is already gone.
	DestroyFramebuffer(ctx Context, f gl.Framebuffer)
}

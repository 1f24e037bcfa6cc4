package render

import "github.com/DragonOgre/ogre/gl"

// MaxRenderTargets is the size of the colour attachment table. The device
// may support fewer simultaneous attachments (Capabilities.MaxColorAttachments);
// slots beyond the device limit are accepted but never bound.
const MaxRenderTargets = 8

// FramebufferTarget owns the GL framebuffer objects behind one render
// target. It validates and binds colour attachments, orchestrates the
// multisample resolve, and rebuilds its context-scoped handles when the
// active graphics context changes.
//
// When multisampling is enabled the target owns two framebuffers: rendering
// goes into the multisample framebuffer (whose colour storage is a pooled
// multisample renderbuffer), and Resolve blits it into the primary
// framebuffer that holds the caller's surfaces.
//
// All methods must run on the goroutine owning the current GL context.
type FramebufferTarget struct {
	dev  Device
	pool *RenderBufferPool

	// ctx is the context the handles below were created under. nil means
	// the handles are gone and Bind will recreate them lazily.
	ctx     Context
	fb      gl.Framebuffer // primary: holds user surfaces, resolve destination
	multiFB gl.Framebuffer // multisample framebuffer; invalid when samples == 0

	samples int // clamped at construction

	colour [MaxRenderTargets]Surface

	// Pooled attachments, released back to the pool on every revalidation
	// and at destruction.
	depth       Surface
	stencil     Surface
	multiColour Surface
}

// NewFramebufferTarget allocates a framebuffer target under the current
// context. The requested sample count is clamped to the device maximum; a
// clamped count above zero allocates the second, multisample framebuffer
// eagerly. The target has no attachments yet and is not render-ready.
func NewFramebufferTarget(dev Device, pool *RenderBufferPool, samples int) *FramebufferTarget {
	caps := dev.Capabilities()
	if samples < 0 {
		samples = 0
	}
	if samples > caps.MaxSamples {
		samples = caps.MaxSamples
	}

	t := &FramebufferTarget{
		dev:     dev,
		pool:    pool,
		ctx:     dev.CurrentContext(),
		samples: samples,
	}
	t.fb = dev.CreateFramebuffer()
	if t.samples > 0 {
		t.multiFB = dev.CreateFramebuffer()
	}
	return t
}

// ── Attachment table ──────────────────────────────────────────────────────────

// BindSurface places a surface in the given colour slot and, if slot 0 is
// populated, revalidates the whole attachment configuration against the
// device.
//
// A failed validation does not roll back: pooled depth/stencil/multisample
// buffers released at the start of validation stay released and the target
// is not render-ready until a later validation succeeds. The attachment
// table itself is preserved, so correcting the offending slot and binding
// again restores a working target.
func (t *FramebufferTarget) BindSurface(slot int, surface Surface) error {
	t.checkSlot(slot)
	t.colour[slot] = surface
	if !t.colour[0].Empty() {
		return t.validate()
	}
	return nil
}

// UnbindSurface empties the given colour slot, revalidating if slot 0 is
// still populated.
func (t *FramebufferTarget) UnbindSurface(slot int) error {
	t.checkSlot(slot)
	t.colour[slot] = Surface{}
	if !t.colour[0].Empty() {
		return t.validate()
	}
	return nil
}

func (t *FramebufferTarget) checkSlot(slot int) {
	if slot < 0 || slot >= MaxRenderTargets {
		panic("render: colour attachment slot out of range")
	}
}

// validate rebuilds the GL-side attachment state from the attachment table:
// it checks every populated slot against slot 0, binds or detaches each
// colour attachment point, acquires the pooled multisample colour buffer,
// configures draw/read buffers, and checks completeness. Depth and stencil
// are deliberately not handled here; see AttachDepthBuffer.
func (t *FramebufferTarget) validate() error {
	if t.ctx != t.dev.CurrentContext() {
		panic("render: framebuffer target validated under a foreign context")
	}

	// Old pooled buffers may no longer match slot 0's size or format.
	t.pool.Release(&t.depth)
	t.pool.Release(&t.stencil)
	t.pool.Release(&t.multiColour)

	if t.colour[0].Empty() {
		return configErrorf(0, "slot 0 must have a surface attached")
	}

	ref := t.colour[0].Buffer
	width, height := ref.Width(), ref.Height()
	native := ref.NativeFormat()
	depthOnly := ref.Format().IsDepth()

	caps := t.dev.Capabilities()
	maxSlots := caps.MaxColorAttachments
	if maxSlots > MaxRenderTargets {
		maxSlots = MaxRenderTargets
	}

	// Leave the global binding as we found it on every path.
	prev := gl.Framebuffer{V: uint32(t.dev.GetInteger(gl.FRAMEBUFFER_BINDING))}
	defer t.dev.BindFramebuffer(gl.FRAMEBUFFER, prev)

	t.dev.BindFramebuffer(gl.FRAMEBUFFER, t.fb)

	for x := 0; x < maxSlots; x++ {
		s := t.colour[x]
		if s.Empty() {
			// Explicitly detach the attachment point.
			t.dev.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0+gl.Enum(x), gl.RENDERBUFFER, gl.Renderbuffer{})
			continue
		}
		if s.Buffer.Width() != width || s.Buffer.Height() != height {
			return configErrorf(x, "size %dx%d does not match slot 0 size %dx%d",
				s.Buffer.Width(), s.Buffer.Height(), width, height)
		}
		if s.Buffer.NativeFormat() != native {
			return configErrorf(x, "format %s (0x%04X) does not match slot 0 format %s (0x%04X)",
				s.Buffer.Format(), uint32(s.Buffer.NativeFormat()), ref.Format(), uint32(native))
		}
		if depthOnly {
			// Depth-only target: the "colour" surface is depth storage.
			s.Buffer.BindToFramebuffer(gl.DEPTH_ATTACHMENT, s.ZOffset)
		} else {
			s.Buffer.BindToFramebuffer(gl.COLOR_ATTACHMENT0+gl.Enum(x), s.ZOffset)
		}
	}

	if t.multiFB.Valid() {
		// Rendering goes into the multisample framebuffer; its colour
		// storage is a pooled renderbuffer because it only lives long
		// enough to be blitted into the primary framebuffer by Resolve.
		t.dev.BindFramebuffer(gl.FRAMEBUFFER, t.multiFB)
		t.multiColour = t.pool.Request(ref.Format(), width, height, t.samples)
		t.multiColour.Buffer.BindToFramebuffer(gl.COLOR_ATTACHMENT0, t.multiColour.ZOffset)
	}

	// Depth/stencil attachment happens in AttachDepthBuffer: which depth
	// buffer a target gets is a pooling policy decided by the owner.

	if caps.HasDrawBuffers() {
		var bufs [MaxRenderTargets]gl.Enum
		n := 0
		for x := 0; x < maxSlots; x++ {
			if t.colour[x].Empty() {
				bufs[x] = gl.NONE
				continue
			}
			if depthOnly {
				bufs[x] = gl.DEPTH_ATTACHMENT
			} else {
				bufs[x] = gl.COLOR_ATTACHMENT0 + gl.Enum(x)
			}
			n = x + 1 // highest populated slot decides how many entries go in
		}

		if !depthOnly {
			t.dev.DrawBuffers(bufs[:n])
		}
		if t.multiFB.Valid() {
			// Resolve blits out of this framebuffer, so it needs a read buffer.
			t.dev.ReadBuffer(bufs[0])
		} else {
			t.dev.ReadBuffer(gl.NONE)
		}
	}

	switch status := t.dev.CheckFramebufferStatus(gl.FRAMEBUFFER); status {
	case gl.FRAMEBUFFER_COMPLETE:
		return nil
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return configErrorf(-1, "framebuffer format combination unsupported by the device")
	default:
		return configErrorf(-1, "framebuffer incomplete (status 0x%04X)", uint32(status))
	}
}

// ── Binding and resolve ───────────────────────────────────────────────────────

// Bind makes the target the active framebuffer, reconciling context changes
// first: handles created under a different context are destroyed through the
// context-aware path and fresh ones are allocated under the current context,
// with the attachment configuration reapplied if slot 0 holds a surface.
// Rendering goes into the multisample framebuffer when one exists.
func (t *FramebufferTarget) Bind() error {
	current := t.dev.CurrentContext()

	if t.ctx != nil && t.ctx != current {
		// Context-scoped handles cannot migrate; destroy and recreate.
		t.destroyHandles()
	}

	if t.ctx == nil {
		t.ctx = current
		t.fb = t.dev.CreateFramebuffer()
		if t.samples > 0 {
			t.multiFB = t.dev.CreateFramebuffer()
		}
		if !t.colour[0].Empty() {
			if err := t.validate(); err != nil {
				return err
			}
		}
	}

	t.dev.BindFramebuffer(gl.FRAMEBUFFER, t.active())
	return nil
}

// Resolve blits the multisample framebuffer into the primary framebuffer,
// performing the multisample resolve over the full surface rectangle. It
// must run once per frame, after rendering and before the primary contents
// are consumed. Without multisampling it is a no-op. The previously bound
// framebuffer is restored.
func (t *FramebufferTarget) Resolve() {
	if !t.multiFB.Valid() {
		return
	}

	prev := gl.Framebuffer{V: uint32(t.dev.GetInteger(gl.FRAMEBUFFER_BINDING))}

	width, height := t.Width(), t.Height()
	t.dev.BindFramebuffer(gl.READ_FRAMEBUFFER, t.multiFB)
	t.dev.BindFramebuffer(gl.DRAW_FRAMEBUFFER, t.fb)
	t.dev.BlitFramebuffer(0, 0, width, height, 0, 0, width, height, gl.COLOR_BUFFER_BIT, gl.NEAREST)

	t.dev.BindFramebuffer(gl.FRAMEBUFFER, prev)
}

// ── Depth and stencil ─────────────────────────────────────────────────────────

// AttachDepthBuffer attaches the depth buffer's sub-buffers to the active
// framebuffer (the multisample one when present): a present sub-buffer is
// bound to its attachment point, an absent one detaches that point. A nil
// depth buffer detaches both. Bind runs first, so the target is rebuilt
// under the current context if needed.
func (t *FramebufferTarget) AttachDepthBuffer(depthBuffer *DepthBuffer) error {
	if err := t.Bind(); err != nil {
		return err
	}

	if depthBuffer == nil {
		t.detachDepthStencil()
		return nil
	}
	if d := depthBuffer.Depth(); d != nil {
		d.BindToFramebuffer(gl.DEPTH_ATTACHMENT, 0)
	} else {
		t.dev.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, gl.Renderbuffer{})
	}
	if s := depthBuffer.Stencil(); s != nil {
		s.BindToFramebuffer(gl.STENCIL_ATTACHMENT, 0)
	} else {
		t.dev.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.STENCIL_ATTACHMENT, gl.RENDERBUFFER, gl.Renderbuffer{})
	}
	return nil
}

// DetachDepthBuffer clears the depth and stencil attachment points. It is a
// teardown operation: if the owning context is already gone it does nothing,
// and if the current context differs it destroys the handles instead of
// rebuilding under the new context the way Bind does.
func (t *FramebufferTarget) DetachDepthBuffer() {
	if t.ctx == nil {
		return
	}
	if t.ctx != t.dev.CurrentContext() {
		t.destroyHandles()
		return
	}

	t.dev.BindFramebuffer(gl.FRAMEBUFFER, t.active())
	t.detachDepthStencil()
}

func (t *FramebufferTarget) detachDepthStencil() {
	t.dev.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, gl.Renderbuffer{})
	t.dev.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.STENCIL_ATTACHMENT, gl.RENDERBUFFER, gl.Renderbuffer{})
}

// ── Lifecycle ─────────────────────────────────────────────────────────────────

// Destroy releases all pooled buffers back to the pool and destroys both
// framebuffer handles through the context-aware path. Safe to call more
// than once.
func (t *FramebufferTarget) Destroy() {
	t.pool.Release(&t.depth)
	t.pool.Release(&t.stencil)
	t.pool.Release(&t.multiColour)
	t.destroyHandles()
}

// destroyHandles destroys the context-scoped framebuffer handles and marks
// the target contextless; Bind recreates them lazily.
func (t *FramebufferTarget) destroyHandles() {
	if t.ctx != nil {
		if t.fb.Valid() {
			t.dev.DestroyFramebuffer(t.ctx, t.fb)
		}
		if t.multiFB.Valid() {
			t.dev.DestroyFramebuffer(t.ctx, t.multiFB)
		}
	}
	t.ctx = nil
	t.fb = gl.Framebuffer{}
	t.multiFB = gl.Framebuffer{}
}

// NotifyContextLost handles the platform event that invalidates every GL
// handle. The context itself is already gone, so the handles are deleted
// raw, best effort; pooled buffers go back to the pool. Repeated loss
// notifications are no-ops.
func (t *FramebufferTarget) NotifyContextLost() {
	t.pool.Release(&t.depth)
	t.pool.Release(&t.stencil)
	t.pool.Release(&t.multiColour)

	if t.fb.Valid() {
		t.dev.DeleteFramebuffer(t.fb)
	}
	if t.multiFB.Valid() {
		t.dev.DeleteFramebuffer(t.multiFB)
	}
	t.ctx = nil
	t.fb = gl.Framebuffer{}
	t.multiFB = gl.Framebuffer{}
}

// NotifyContextReset rebuilds the target under the freshly restored context:
// a new primary framebuffer is allocated and the given surface is bound to
// slot 0, which reruns validation.
func (t *FramebufferTarget) NotifyContextReset(surface Surface) error {
	t.ctx = t.dev.CurrentContext()
	t.fb = t.dev.CreateFramebuffer()
	return t.BindSurface(0, surface)
}

// ── Accessors ─────────────────────────────────────────────────────────────────

// Width returns slot 0's surface width. Panics without a slot-0 surface.
func (t *FramebufferTarget) Width() int {
	return t.slot0().Width()
}

// Height returns slot 0's surface height. Panics without a slot-0 surface.
func (t *FramebufferTarget) Height() int {
	return t.slot0().Height()
}

// Format returns slot 0's pixel format. Panics without a slot-0 surface.
func (t *FramebufferTarget) Format() PixelFormat {
	return t.slot0().Format()
}

// Samples returns the effective (clamped) multisample count.
func (t *FramebufferTarget) Samples() int { return t.samples }

// Context returns the context the target's handles currently live under,
// or nil when the handles are gone.
func (t *FramebufferTarget) Context() Context { return t.ctx }

func (t *FramebufferTarget) slot0() PixelBuffer {
	if t.colour[0].Empty() {
		panic("render: framebuffer target has no slot 0 surface")
	}
	return t.colour[0].Buffer
}

// active returns the framebuffer rendering should go into: the multisample
// framebuffer when present, else the primary.
func (t *FramebufferTarget) active() gl.Framebuffer {
	if t.multiFB.Valid() {
		return t.multiFB
	}
	return t.fb
}

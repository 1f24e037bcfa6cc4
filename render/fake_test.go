package render

import (
	"fmt"

	"github.com/DragonOgre/ogre/gl"
)

// fakeDevice is an in-memory Device implementation recording the GL call
// stream, so target and pool behavior can be asserted without a GPU.
type fakeDevice struct {
	caps    Capabilities
	current Context

	nextName uint32

	liveFBs map[uint32]bool
	liveRBs map[uint32]bool

	// Framebuffer bindings. Binding gl.FRAMEBUFFER sets both.
	readBound uint32
	drawBound uint32

	// attached records the buffer at each (framebuffer, attachment point)
	// pair. An explicit detach stores nil.
	attached map[attachKey]any

	// status overrides CheckFramebufferStatus per framebuffer name;
	// unlisted framebuffers are complete.
	status map[uint32]gl.Enum

	drawBufs []gl.Enum
	readBuf  gl.Enum
	blits    []fakeBlit

	destroyed  []destroyedFB // context-aware destroys
	rawDeleted []uint32      // raw framebuffer deletes (loss recovery)
}

type attachKey struct {
	fb    uint32
	point gl.Enum
}

type fakeBlit struct {
	srcFB, dstFB   uint32
	width, height  int
}

type destroyedFB struct {
	ctx Context
	fb  uint32
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		caps: Capabilities{
			MaxColorAttachments: 8,
			MaxSamples:          8,
			Version:             [2]int{4, 1},
		},
		current:  &struct{ name string }{"ctxA"},
		liveFBs:  make(map[uint32]bool),
		liveRBs:  make(map[uint32]bool),
		attached: make(map[attachKey]any),
		status:   make(map[uint32]gl.Enum),
	}
}

// ── Device ────────────────────────────────────────────────────────────────────

func (d *fakeDevice) CurrentContext() Context       { return d.current }
func (d *fakeDevice) Capabilities() Capabilities    { return d.caps }

func (d *fakeDevice) DestroyFramebuffer(ctx Context, f gl.Framebuffer) {
	d.destroyed = append(d.destroyed, destroyedFB{ctx: ctx, fb: f.V})
	delete(d.liveFBs, f.V)
}

// ── gl.Functions ──────────────────────────────────────────────────────────────

func (d *fakeDevice) CreateFramebuffer() gl.Framebuffer {
	d.nextName++
	d.liveFBs[d.nextName] = true
	return gl.Framebuffer{V: d.nextName}
}

func (d *fakeDevice) DeleteFramebuffer(f gl.Framebuffer) {
	d.rawDeleted = append(d.rawDeleted, f.V)
	delete(d.liveFBs, f.V)
}

func (d *fakeDevice) BindFramebuffer(target gl.Enum, f gl.Framebuffer) {
	switch target {
	case gl.FRAMEBUFFER:
		d.readBound, d.drawBound = f.V, f.V
	case gl.READ_FRAMEBUFFER:
		d.readBound = f.V
	case gl.DRAW_FRAMEBUFFER:
		d.drawBound = f.V
	default:
		panic(fmt.Sprintf("fakeDevice: bad bind target 0x%04X", uint32(target)))
	}
}

func (d *fakeDevice) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	if s, ok := d.status[d.drawBound]; ok {
		return s
	}
	return gl.FRAMEBUFFER_COMPLETE
}

func (d *fakeDevice) FramebufferRenderbuffer(target, attachment, renderbuffertarget gl.Enum, r gl.Renderbuffer) {
	key := attachKey{fb: d.drawBound, point: attachment}
	if !r.Valid() {
		d.attached[key] = nil
		return
	}
	d.attached[key] = r
}

func (d *fakeDevice) FramebufferTexture2D(target, attachment, textarget gl.Enum, t gl.Texture, level int) {
	d.attached[attachKey{fb: d.drawBound, point: attachment}] = t
}

func (d *fakeDevice) CreateRenderbuffer() gl.Renderbuffer {
	d.nextName++
	d.liveRBs[d.nextName] = true
	return gl.Renderbuffer{V: d.nextName}
}

func (d *fakeDevice) DeleteRenderbuffer(r gl.Renderbuffer) {
	delete(d.liveRBs, r.V)
}

func (d *fakeDevice) BindRenderbuffer(target gl.Enum, r gl.Renderbuffer) {}

func (d *fakeDevice) RenderbufferStorageMultisample(target gl.Enum, samples int, internalformat gl.Enum, width, height int) {
}

func (d *fakeDevice) DrawBuffers(bufs []gl.Enum) {
	d.drawBufs = append([]gl.Enum(nil), bufs...)
}

func (d *fakeDevice) ReadBuffer(src gl.Enum) { d.readBuf = src }

func (d *fakeDevice) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask, filter gl.Enum) {
	d.blits = append(d.blits, fakeBlit{
		srcFB:  d.readBound,
		dstFB:  d.drawBound,
		width:  srcX1 - srcX0,
		height: srcY1 - srcY0,
	})
}

func (d *fakeDevice) GetInteger(pname gl.Enum) int {
	switch pname {
	case gl.FRAMEBUFFER_BINDING:
		return int(d.drawBound)
	case gl.MAX_COLOR_ATTACHMENTS:
		return d.caps.MaxColorAttachments
	case gl.MAX_SAMPLES:
		return d.caps.MaxSamples
	}
	return 0
}

func (d *fakeDevice) GetString(pname gl.Enum) string {
	if pname == gl.VERSION {
		return fmt.Sprintf("%d.%d fake", d.caps.Version[0], d.caps.Version[1])
	}
	return ""
}

// attachmentAt returns what is attached at the given point of fb: a
// *fakeBuffer, a gl.Renderbuffer, nil for an explicit detach, and false
// when the point was never touched.
func (d *fakeDevice) attachmentAt(fb gl.Framebuffer, point gl.Enum) (any, bool) {
	v, ok := d.attached[attachKey{fb: fb.V, point: point}]
	return v, ok
}

// ── fake pixel buffer ─────────────────────────────────────────────────────────

// fakeBuffer is a PixelBuffer whose attach calls are recorded on the device.
type fakeBuffer struct {
	dev    *fakeDevice
	width  int
	height int
	format PixelFormat
	native gl.Enum // overrides format.GLInternalFormat when nonzero
}

func newFakeBuffer(dev *fakeDevice, width, height int, format PixelFormat) *fakeBuffer {
	return &fakeBuffer{dev: dev, width: width, height: height, format: format}
}

func (b *fakeBuffer) Width() int          { return b.width }
func (b *fakeBuffer) Height() int         { return b.height }
func (b *fakeBuffer) Format() PixelFormat { return b.format }

func (b *fakeBuffer) NativeFormat() gl.Enum {
	if b.native != 0 {
		return b.native
	}
	return b.format.GLInternalFormat()
}

func (b *fakeBuffer) BindToFramebuffer(attachment gl.Enum, zoffset int) {
	b.dev.attached[attachKey{fb: b.dev.drawBound, point: attachment}] = b
}

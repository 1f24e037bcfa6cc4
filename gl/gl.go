// Package gl defines the narrow slice of the OpenGL API used by the render
// package, as an interface over typed handles. Production code backs it with
// the go-gl bindings (internal/opengl); tests back it with an in-memory fake.
package gl

// Enum is a GL enumerant (GLenum).
type Enum uint32

// Framebuffer is a GL framebuffer object name. The zero value is the
// window-system framebuffer and is never owned by this module.
type Framebuffer struct {
	V uint32
}

// Renderbuffer is a GL renderbuffer object name.
type Renderbuffer struct {
	V uint32
}

// Texture is a GL texture object name.
type Texture struct {
	V uint32
}

// Valid reports whether f names an allocated framebuffer object.
func (f Framebuffer) Valid() bool { return f.V != 0 }

// Valid reports whether r names an allocated renderbuffer object.
func (r Renderbuffer) Valid() bool { return r.V != 0 }

// Valid reports whether t names an allocated texture object.
func (t Texture) Valid() bool { return t.V != 0 }

// Functions is the GL call surface required by the render package.
//
// All calls assume a current GL context on the calling goroutine.
type Functions interface {
	CreateFramebuffer() Framebuffer
	DeleteFramebuffer(f Framebuffer)
	BindFramebuffer(target Enum, f Framebuffer)
	CheckFramebufferStatus(target Enum) Enum
	FramebufferRenderbuffer(target, attachment, renderbuffertarget Enum, r Renderbuffer)
	FramebufferTexture2D(target, attachment, textarget Enum, t Texture, level int)

	CreateRenderbuffer() Renderbuffer
	DeleteRenderbuffer(r Renderbuffer)
	BindRenderbuffer(target Enum, r Renderbuffer)
	RenderbufferStorageMultisample(target Enum, samples int, internalformat Enum, width, height int)

	DrawBuffers(bufs []Enum)
	ReadBuffer(src Enum)
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask Enum, filter Enum)

	GetInteger(pname Enum) int
	GetString(pname Enum) string
}

const (
	FRAMEBUFFER      Enum = 0x8D40
	READ_FRAMEBUFFER Enum = 0x8CA8
	DRAW_FRAMEBUFFER Enum = 0x8CA9
	RENDERBUFFER     Enum = 0x8D41

	FRAMEBUFFER_BINDING Enum = 0x8CA6

	COLOR_ATTACHMENT0  Enum = 0x8CE0
	DEPTH_ATTACHMENT   Enum = 0x8D00
	STENCIL_ATTACHMENT Enum = 0x8D20

	FRAMEBUFFER_COMPLETE    Enum = 0x8CD5
	FRAMEBUFFER_UNSUPPORTED Enum = 0x8CDD

	MAX_COLOR_ATTACHMENTS Enum = 0x8CDF
	MAX_SAMPLES           Enum = 0x8D57

	VERSION Enum = 0x1F02

	NONE Enum = 0
	BACK Enum = 0x0405

	COLOR_BUFFER_BIT Enum = 0x4000
	NEAREST          Enum = 0x2600

	TEXTURE_2D Enum = 0x0DE1

	// Renderbuffer / texture internal formats.
	RGB8               Enum = 0x8051
	RGBA8              Enum = 0x8058
	SRGB8_ALPHA8       Enum = 0x8C43
	RGBA16F            Enum = 0x881A
	DEPTH_COMPONENT16  Enum = 0x81A5
	DEPTH_COMPONENT24  Enum = 0x81A6
	DEPTH_COMPONENT32F Enum = 0x8CAC
	DEPTH24_STENCIL8   Enum = 0x88F0
	STENCIL_INDEX8     Enum = 0x8D48
)

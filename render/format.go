package render

import "github.com/DragonOgre/ogre/gl"

// PixelFormat identifies the logical pixel layout of a surface or
// renderbuffer. It is the format callers reason about; the GL internal
// format code lives behind NativeFormat on the buffer itself.
type PixelFormat uint8

const (
	FormatUnknown PixelFormat = iota
	FormatRGB8
	FormatRGBA8
	FormatSRGBA8
	FormatRGBA16F
	FormatDepth16
	FormatDepth24Stencil8
	FormatDepth32F
	FormatStencil8
)

// IsDepth reports whether the format stores depth values. A framebuffer
// whose slot-0 surface has a depth format is treated as a depth-only
// target: colour surfaces attach to the depth attachment point and no
// draw buffers are configured.
func (f PixelFormat) IsDepth() bool {
	switch f {
	case FormatDepth16, FormatDepth24Stencil8, FormatDepth32F:
		return true
	}
	return false
}

// HasStencil reports whether the format carries stencil bits.
func (f PixelFormat) HasStencil() bool {
	return f == FormatDepth24Stencil8 || f == FormatStencil8
}

// GLInternalFormat returns the renderbuffer internal format for f,
// or gl.NONE if f has no renderbuffer representation.
func (f PixelFormat) GLInternalFormat() gl.Enum {
	switch f {
	case FormatRGB8:
		return gl.RGB8
	case FormatRGBA8:
		return gl.RGBA8
	case FormatSRGBA8:
		return gl.SRGB8_ALPHA8
	case FormatRGBA16F:
		return gl.RGBA16F
	case FormatDepth16:
		return gl.DEPTH_COMPONENT16
	case FormatDepth24Stencil8:
		return gl.DEPTH24_STENCIL8
	case FormatDepth32F:
		return gl.DEPTH_COMPONENT32F
	case FormatStencil8:
		return gl.STENCIL_INDEX8
	}
	return gl.NONE
}

func (f PixelFormat) String() string {
	switch f {
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatSRGBA8:
		return "SRGBA8"
	case FormatRGBA16F:
		return "RGBA16F"
	case FormatDepth16:
		return "Depth16"
	case FormatDepth24Stencil8:
		return "Depth24Stencil8"
	case FormatDepth32F:
		return "Depth32F"
	case FormatStencil8:
		return "Stencil8"
	}
	return "Unknown"
}

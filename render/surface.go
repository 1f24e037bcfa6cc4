package render

import "github.com/DragonOgre/ogre/gl"

// PixelBuffer is a GPU buffer that can be attached to a framebuffer: a
// texture level, a texture array slice, or a renderbuffer.
type PixelBuffer interface {
	Width() int
	Height() int

	// Format is the logical pixel format.
	Format() PixelFormat

	// NativeFormat is the GL internal format code. Attachment validation
	// compares native formats, not logical ones: two surfaces with the same
	// logical format but different internal formats cannot share an FBO.
	NativeFormat() gl.Enum

	// BindToFramebuffer attaches the buffer to the named attachment point of
	// the currently bound framebuffer. zoffset selects the array layer or
	// depth slice for layered buffers; flat buffers ignore it.
	BindToFramebuffer(attachment gl.Enum, zoffset int)
}

// Surface pairs a pixel buffer with the slice of it to render into.
// The zero Surface is empty.
type Surface struct {
	Buffer  PixelBuffer
	ZOffset int
}

// Empty reports whether the surface holds no buffer.
func (s Surface) Empty() bool { return s.Buffer == nil }

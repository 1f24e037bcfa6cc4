package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	ogregl "github.com/DragonOgre/ogre/gl"
	"github.com/DragonOgre/ogre/render"
)

// Texture2D is a texture-backed render.PixelBuffer: a sampleable surface
// that a FramebufferTarget can render into.
type Texture2D struct {
	id     ogregl.Texture
	width  int
	height int
	format render.PixelFormat
}

// NewTexture2D allocates an immutable-size 2D texture suitable for use as a
// framebuffer attachment.
func NewTexture2D(width, height int, format render.PixelFormat) (*Texture2D, error) {
	internal, pixFormat, pixType, err := texImageTriple(format)
	if err != nil {
		return nil, err
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(internal),
		int32(width), int32(height), 0, pixFormat, pixType, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture2D{
		id:     ogregl.Texture{V: id},
		width:  width,
		height: height,
		format: format,
	}, nil
}

func (t *Texture2D) Width() int                  { return t.width }
func (t *Texture2D) Height() int                 { return t.height }
func (t *Texture2D) Format() render.PixelFormat  { return t.format }
func (t *Texture2D) NativeFormat() ogregl.Enum   { return t.format.GLInternalFormat() }

// ID returns the GL texture name, for sampling the rendered result.
func (t *Texture2D) ID() ogregl.Texture { return t.id }

// BindToFramebuffer attaches mip level 0 to the currently bound
// framebuffer. 2D textures have no layers, so zoffset is ignored.
func (t *Texture2D) BindToFramebuffer(attachment ogregl.Enum, zoffset int) {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, uint32(attachment), gl.TEXTURE_2D, t.id.V, 0)
}

// Destroy frees the GL texture.
func (t *Texture2D) Destroy() {
	if t.id.Valid() {
		gl.DeleteTextures(1, &t.id.V)
		t.id = ogregl.Texture{}
	}
}

// texImageTriple maps a pixel format to the (internalformat, format, type)
// triple TexImage2D wants.
func texImageTriple(format render.PixelFormat) (internal uint32, pixFormat uint32, pixType uint32, err error) {
	switch format {
	case render.FormatRGB8:
		return gl.RGB8, gl.RGB, gl.UNSIGNED_BYTE, nil
	case render.FormatRGBA8:
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE, nil
	case render.FormatSRGBA8:
		return gl.SRGB8_ALPHA8, gl.RGBA, gl.UNSIGNED_BYTE, nil
	case render.FormatRGBA16F:
		return gl.RGBA16F, gl.RGBA, gl.HALF_FLOAT, nil
	case render.FormatDepth16:
		return gl.DEPTH_COMPONENT16, gl.DEPTH_COMPONENT, gl.UNSIGNED_SHORT, nil
	case render.FormatDepth24Stencil8:
		return gl.DEPTH24_STENCIL8, gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8, nil
	case render.FormatDepth32F:
		return gl.DEPTH_COMPONENT32F, gl.DEPTH_COMPONENT, gl.FLOAT, nil
	}
	return 0, 0, 0, fmt.Errorf("pixel format %s has no texture representation", format)
}

package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	ogregl "github.com/DragonOgre/ogre/gl"
)

// Functions implements the GL call seam over the go-gl bindings. All calls
// require a current OpenGL context on the calling goroutine.
type Functions struct{}

func (Functions) CreateFramebuffer() ogregl.Framebuffer {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return ogregl.Framebuffer{V: id}
}

func (Functions) DeleteFramebuffer(f ogregl.Framebuffer) {
	gl.DeleteFramebuffers(1, &f.V)
}

func (Functions) BindFramebuffer(target ogregl.Enum, f ogregl.Framebuffer) {
	gl.BindFramebuffer(uint32(target), f.V)
}

func (Functions) CheckFramebufferStatus(target ogregl.Enum) ogregl.Enum {
	return ogregl.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (Functions) FramebufferRenderbuffer(target, attachment, renderbuffertarget ogregl.Enum, r ogregl.Renderbuffer) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbuffertarget), r.V)
}

func (Functions) FramebufferTexture2D(target, attachment, textarget ogregl.Enum, t ogregl.Texture, level int) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(textarget), t.V, int32(level))
}

func (Functions) CreateRenderbuffer() ogregl.Renderbuffer {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	return ogregl.Renderbuffer{V: id}
}

func (Functions) DeleteRenderbuffer(r ogregl.Renderbuffer) {
	gl.DeleteRenderbuffers(1, &r.V)
}

func (Functions) BindRenderbuffer(target ogregl.Enum, r ogregl.Renderbuffer) {
	gl.BindRenderbuffer(uint32(target), r.V)
}

func (Functions) RenderbufferStorageMultisample(target ogregl.Enum, samples int, internalformat ogregl.Enum, width, height int) {
	if samples > 0 {
		gl.RenderbufferStorageMultisample(uint32(target), int32(samples), uint32(internalformat), int32(width), int32(height))
		return
	}
	gl.RenderbufferStorage(uint32(target), uint32(internalformat), int32(width), int32(height))
}

func (Functions) DrawBuffers(bufs []ogregl.Enum) {
	if len(bufs) == 0 {
		return
	}
	native := make([]uint32, len(bufs))
	for i, b := range bufs {
		native[i] = uint32(b)
	}
	gl.DrawBuffers(int32(len(native)), &native[0])
}

func (Functions) ReadBuffer(src ogregl.Enum) {
	gl.ReadBuffer(uint32(src))
}

func (Functions) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask, filter ogregl.Enum) {
	gl.BlitFramebuffer(
		int32(srcX0), int32(srcY0), int32(srcX1), int32(srcY1),
		int32(dstX0), int32(dstY0), int32(dstX1), int32(dstY1),
		uint32(mask), uint32(filter),
	)
}

func (Functions) GetInteger(pname ogregl.Enum) int {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (Functions) GetString(pname ogregl.Enum) string {
	return gl.GoStr(gl.GetString(uint32(pname)))
}

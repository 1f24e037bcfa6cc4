package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	ogregl "github.com/DragonOgre/ogre/gl"
	"github.com/DragonOgre/ogre/render"
)

// Device is the production render.Device over go-gl and GLFW. The GLFW
// window whose context is current serves as the context identity.
//
// Framebuffers destroyed while a different context is current are queued and
// deleted the next time their owning context becomes current again
// (FlushDestroyQueue); GL object names must be deleted under the context
// that created them.
type Device struct {
	Functions

	caps    render.Capabilities
	pending map[render.Context][]ogregl.Framebuffer
}

// NewDevice initializes the GL bindings and queries device capabilities.
// A context must be current.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	d := &Device{
		pending: make(map[render.Context][]ogregl.Framebuffer),
	}

	version, _, err := ogregl.ParseVersion(d.GetString(ogregl.VERSION))
	if err != nil {
		return nil, err
	}
	d.caps = render.Capabilities{
		MaxColorAttachments: d.GetInteger(ogregl.MAX_COLOR_ATTACHMENTS),
		MaxSamples:          d.GetInteger(ogregl.MAX_SAMPLES),
		Version:             version,
	}
	return d, nil
}

func (d *Device) Capabilities() render.Capabilities { return d.caps }

// CurrentContext returns the GLFW window owning the current context,
// or nil if no context is current.
func (d *Device) CurrentContext() render.Context {
	if w := glfw.GetCurrentContext(); w != nil {
		return w
	}
	return nil
}

// DestroyFramebuffer deletes a framebuffer created under ctx. When ctx is
// current the name is deleted immediately; otherwise it is queued until
// that context is current again.
func (d *Device) DestroyFramebuffer(ctx render.Context, f ogregl.Framebuffer) {
	if !f.Valid() || ctx == nil {
		return
	}
	if ctx == d.CurrentContext() {
		d.DeleteFramebuffer(f)
		return
	}
	d.pending[ctx] = append(d.pending[ctx], f)
}

// FlushDestroyQueue deletes framebuffers queued against the now-current
// context. Call it after every context switch.
func (d *Device) FlushDestroyQueue() {
	ctx := d.CurrentContext()
	if ctx == nil {
		return
	}
	for _, f := range d.pending[ctx] {
		d.DeleteFramebuffer(f)
	}
	delete(d.pending, ctx)
}

// DropDestroyQueue discards deletions queued against a context that has
// been destroyed; its GL names died with it.
func (d *Device) DropDestroyQueue(ctx render.Context) {
	delete(d.pending, ctx)
}

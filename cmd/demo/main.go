package main

import (
	"flag"
	"fmt"
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/DragonOgre/ogre/compositor"
	"github.com/DragonOgre/ogre/core"
	"github.com/DragonOgre/ogre/internal/opengl"
	"github.com/DragonOgre/ogre/render"
)

// The demo renders a few frames into a multisampled offscreen target through
// a basic compositor workspace, resolves into a texture, and reads a pixel
// back to confirm the resolve landed.
func main() {
	width := flag.Int("width", 1280, "offscreen target width")
	height := flag.Int("height", 720, "offscreen target height")
	samples := flag.Int("samples", 4, "MSAA sample count (0 disables)")
	frames := flag.Int("frames", 3, "number of frames to render")
	flag.Parse()

	if err := run(*width, *height, *samples, *frames); err != nil {
		log.Fatalf("demo: %v", err)
	}
}

func run(width, height, samples, frames int) error {
	window, err := core.NewWindow(core.WindowConfig{
		Width:  width,
		Height: height,
		Title:  "ogre offscreen demo",
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	dev, err := opengl.NewDevice()
	if err != nil {
		return fmt.Errorf("create device: %w", err)
	}
	caps := dev.Capabilities()
	log.Printf("OpenGL %d.%d, %d colour attachments, %d max samples",
		caps.Version[0], caps.Version[1], caps.MaxColorAttachments, caps.MaxSamples)

	pool := render.NewRenderBufferPool(dev)

	colour, err := opengl.NewTexture2D(width, height, render.FormatRGBA8)
	if err != nil {
		return fmt.Errorf("allocate colour texture: %w", err)
	}
	defer colour.Destroy()

	target := render.NewFramebufferTarget(dev, pool, samples)
	defer target.Destroy()
	if err := target.BindSurface(0, render.Surface{Buffer: colour}); err != nil {
		return fmt.Errorf("bind colour surface: %w", err)
	}

	depth := render.NewRenderBuffer(dev, render.FormatDepth24Stencil8, width, height, target.Samples())
	defer depth.Destroy()
	if err := target.AttachDepthBuffer(render.NewDepthBuffer(depth, nil)); err != nil {
		return fmt.Errorf("attach depth buffer: %w", err)
	}

	mgr := compositor.NewManager()
	clear := core.ClearValue{Color: core.Color{R: 0.2, G: 0.4, B: 0.6, A: 1}, Depth: 1}
	if _, err := mgr.AddBasicWorkspaceDefinition("demo", "demoScene", clear); err != nil {
		return fmt.Errorf("register workspace: %w", err)
	}
	mgr.ValidateAllNodes()
	if _, err := mgr.AddWorkspace("demo", target); err != nil {
		return fmt.Errorf("instantiate workspace: %w", err)
	}
	defer mgr.RemoveAllWorkspaces()

	for i := 0; i < frames; i++ {
		window.PollEvents()
		if err := mgr.Update(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}

		// Pass execution stands in for the scene renderer here: clear the
		// bound target with the workspace's clear colour.
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.ClearColor(clear.Color.R, clear.Color.G, clear.Color.B, clear.Color.A)
		gl.ClearDepth(float64(clear.Depth))
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		mgr.SwapAllFinalTargets()
	}
	log.Printf("rendered %d frames at %dx%d, %d samples", mgr.FrameCount(), width, height, target.Samples())

	pixel := readCenterPixel(colour)
	log.Printf("resolved centre pixel: R=%d G=%d B=%d A=%d", pixel[0], pixel[1], pixel[2], pixel[3])
	log.Printf("pooled renderbuffers live: %d", pool.Live())
	return nil
}

// readCenterPixel pulls the resolved texture back to the CPU and samples its
// centre texel.
func readCenterPixel(tex *opengl.Texture2D) [4]byte {
	pixels := make([]byte, tex.Width()*tex.Height()*4)
	gl.BindTexture(gl.TEXTURE_2D, tex.ID().V)
	gl.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	offset := ((tex.Height()/2)*tex.Width() + tex.Width()/2) * 4
	var pixel [4]byte
	copy(pixel[:], pixels[offset:offset+4])
	return pixel
}

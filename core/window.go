package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

// Window owns a GLFW window and its OpenGL context. The window's context is
// the context identity the render package tracks: GL object names created
// while this window's context is current belong to it.
type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string
	vsync  bool
}

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
	Visible   bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "Render Engine",
		Resizable: true,
		VSync:     true,
		Visible:   true,
	}
}

// NewWindow initializes GLFW (first call only) and creates a window with an
// OpenGL 4.1 core-profile context. The context is not current until
// MakeContextCurrent is called.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))
	glfw.WindowHint(glfw.Visible, boolToInt(config.Visible))

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
		vsync:  config.VSync,
	}

	handle.SetSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
	})

	return window, nil
}

// MakeContextCurrent binds the window's GL context to the calling goroutine.
func (w *Window) MakeContextCurrent() {
	w.Handle.MakeContextCurrent()
	if w.VSyncEnabled() {
		glfw.SwapInterval(1)
	}
}

// VSyncEnabled reports whether buffer swaps wait for vertical sync.
func (w *Window) VSyncEnabled() bool {
	return w.vsync
}

// Context returns the window's context identity.
func (w *Window) Context() *glfw.Window {
	return w.Handle
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// SwapBuffers presents the window-system framebuffer.
func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

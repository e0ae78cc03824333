// Package window handles SDL2 window and OpenGL context creation and
// translates SDL events into input state.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/waterscape/internal/engine/input"
	"github.com/Faultbox/waterscape/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	// RelativeMouse hides the pointer and reads raw motion. Otherwise the
	// pointer is warped back to the window centre after every poll.
	RelativeMouse bool
}

// Window wraps SDL2 window and OpenGL context.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	focused   bool
}

// New creates a new window with OpenGL context.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config:  cfg,
		focused: true,
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 Core Profile (max supported on macOS)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	if cfg.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			logger.Warn("failed to enable VSync", zap.Error(err))
		}
	} else {
		sdl.GLSetSwapInterval(0)
	}

	if cfg.RelativeMouse {
		sdl.SetRelativeMouseMode(true)
	} else {
		sdl.ShowCursor(sdl.DISABLE)
		w.RecenterPointer()
	}

	dw, dh := w.DrawableSize()
	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("drawableWidth", dw),
		zap.Int("drawableHeight", dh),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// PollInput drains pending events into in, samples the pointer and
// recenters it. Call in.BeginFrame first.
func (w *Window) PollInput(in *input.State) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.Quit = true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_CLOSE:
				in.Quit = true
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				w.focused = true
				w.RecenterPointer()
			case sdl.WINDOWEVENT_FOCUS_LOST:
				w.focused = false
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if k := keyForScancode(e.Keysym.Scancode); k != input.KeyUnknown {
				in.SetKey(k, e.State == sdl.PRESSED)
			}
		}
	}

	in.SetSize(w.DrawableSize())

	if !w.focused {
		return
	}
	if w.config.RelativeMouse {
		dx, dy, _ := sdl.GetRelativeMouseState()
		in.AddMouseDelta(float32(dx), float32(dy))
		return
	}

	x, y, _ := sdl.GetMouseState()
	cx, cy := w.centre()
	in.AddMouseDelta(float32(x-cx), float32(y-cy))
	w.RecenterPointer()
}

// RecenterPointer warps the pointer to the middle of the window.
func (w *Window) RecenterPointer() {
	cx, cy := w.centre()
	w.sdlWindow.WarpMouseInWindow(cx, cy)
}

func (w *Window) centre() (int32, int32) {
	width, height := w.sdlWindow.GetSize()
	return width / 2, height / 2
}

// SwapBuffers swaps the OpenGL buffers.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// DrawableSize returns the size of the GL drawable in pixels.
func (w *Window) DrawableSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// IsMinimized reports whether the window is iconified.
func (w *Window) IsMinimized() bool {
	return w.sdlWindow.GetFlags()&sdl.WINDOW_MINIMIZED != 0
}

var scancodes = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_ESCAPE:   input.KeyEscape,
	sdl.SCANCODE_SPACE:    input.KeySpace,
	sdl.SCANCODE_LCTRL:    input.KeyLeftCtrl,
	sdl.SCANCODE_PAGEUP:   input.KeyPageUp,
	sdl.SCANCODE_PAGEDOWN: input.KeyPageDown,

	sdl.SCANCODE_F1:  input.KeyF1,
	sdl.SCANCODE_F2:  input.KeyF2,
	sdl.SCANCODE_F3:  input.KeyF3,
	sdl.SCANCODE_F4:  input.KeyF4,
	sdl.SCANCODE_F5:  input.KeyF5,
	sdl.SCANCODE_F6:  input.KeyF6,
	sdl.SCANCODE_F7:  input.KeyF7,
	sdl.SCANCODE_F8:  input.KeyF8,
	sdl.SCANCODE_F9:  input.KeyF9,
	sdl.SCANCODE_F10: input.KeyF10,
	sdl.SCANCODE_F12: input.KeyF12,
}

// keyForScancode maps physical key positions, so the layout of the
// movement keys does not depend on the keyboard language.
func keyForScancode(sc sdl.Scancode) input.Key {
	switch {
	case sc >= sdl.SCANCODE_A && sc <= sdl.SCANCODE_Z:
		return input.KeyA + input.Key(sc-sdl.SCANCODE_A)
	case sc >= sdl.SCANCODE_1 && sc <= sdl.SCANCODE_9:
		return input.Key1 + input.Key(sc-sdl.SCANCODE_1)
	case sc == sdl.SCANCODE_0:
		return input.Key0
	}
	return scancodes[sc]
}

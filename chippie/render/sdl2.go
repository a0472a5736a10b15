//go:build sdl2

package render

import (
	"fmt"
	"log/slog"
	"unsafe"

	chippie "github.com/valerio/go-chippie/chippie"
	"github.com/valerio/go-chippie/chippie/input"
	"github.com/valerio/go-chippie/chippie/timing"
	"github.com/valerio/go-chippie/chippie/video"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	pixelScale   = 10
	windowWidth  = video.FramebufferWidth * pixelScale
	windowHeight = video.FramebufferHeight * pixelScale
)

// sdlKeyMap mirrors input.DefaultKeyMap for SDL keycodes.
var sdlKeyMap = map[sdl.Keycode]input.Key{
	sdl.K_1: input.Key1, sdl.K_2: input.Key2, sdl.K_3: input.Key3, sdl.K_4: input.KeyC,
	sdl.K_q: input.Key4, sdl.K_w: input.Key5, sdl.K_e: input.Key6, sdl.K_r: input.KeyD,
	sdl.K_a: input.Key7, sdl.K_s: input.Key8, sdl.K_d: input.Key9, sdl.K_f: input.KeyE,
	sdl.K_z: input.KeyA, sdl.K_x: input.Key0, sdl.K_c: input.KeyB, sdl.K_v: input.KeyF,
}

// SDL2Renderer runs a machine in a scaled native window.
// Note: building this requires the SDL2 development libraries installed.
// Default builds skip it and fall back to a stub, see build tags (sdl2).
type SDL2Renderer struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	machine  *chippie.Machine
	pixels   []byte
	running  bool
	paused   bool
}

// NewSDL2Renderer creates the window, renderer and streaming texture.
func NewSDL2Renderer(machine *chippie.Machine) (*SDL2Renderer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	window, err := sdl.CreateWindow(
		"chippie",
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		windowWidth,
		windowHeight,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		video.FramebufferWidth,
		video.FramebufferHeight,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create texture: %w", err)
	}

	slog.Info("SDL2 renderer initialized", "scale", pixelScale)

	return &SDL2Renderer{
		window:   window,
		renderer: renderer,
		texture:  texture,
		machine:  machine,
		pixels:   make([]byte, video.FramebufferWidth*video.FramebufferHeight*4),
		running:  true,
	}, nil
}

// Run drives the machine at 60 frames per second until the window closes
// or ESC is pressed. Emulation errors pause the machine.
func (s *SDL2Renderer) Run() error {
	defer s.cleanup()

	limiter := timing.NewTickerLimiter()
	defer limiter.Stop()

	for s.running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			s.handleEvent(event)
		}

		if !s.paused {
			if err := s.machine.RunFrame(); err != nil {
				slog.Error("emulation error, pausing", "error", err)
				s.paused = true
			}
		}

		s.renderFrame()
		limiter.WaitForNextFrame()
	}

	return nil
}

func (s *SDL2Renderer) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		s.running = false

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return
		}

		pressed := e.Type == sdl.KEYDOWN
		switch e.Keysym.Sym {
		case sdl.K_ESCAPE:
			if pressed {
				s.running = false
			}
		case sdl.K_p:
			if pressed {
				s.paused = !s.paused
			}
		default:
			if key, ok := sdlKeyMap[e.Keysym.Sym]; ok {
				s.machine.SetKey(key, pressed)
			}
		}
	}
}

func (s *SDL2Renderer) renderFrame() {
	fb := s.machine.Framebuffer()

	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			var value byte
			if fb.At(x, y) {
				value = 0xFF
			}
			i := (y*video.FramebufferWidth + x) * 4
			s.pixels[i] = value
			s.pixels[i+1] = value
			s.pixels[i+2] = value
			s.pixels[i+3] = 0xFF
		}
	}

	s.texture.Update(nil, unsafe.Pointer(&s.pixels[0]), video.FramebufferWidth*4)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
}

func (s *SDL2Renderer) cleanup() {
	slog.Info("cleaning up SDL2 renderer")

	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
}

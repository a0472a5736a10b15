//go:build !sdl2

package render

import (
	"fmt"

	chippie "github.com/valerio/go-chippie/chippie"
)

// SDL2Renderer stub for when SDL2 is not available.
type SDL2Renderer struct{}

// NewSDL2Renderer returns an error indicating SDL2 is not available.
func NewSDL2Renderer(machine *chippie.Machine) (*SDL2Renderer, error) {
	return nil, fmt.Errorf("SDL2 renderer not available - build with -tags sdl2 to enable")
}

// Run returns an error.
func (s *SDL2Renderer) Run() error {
	return fmt.Errorf("SDL2 renderer not available")
}

package video

import "strings"

const (
	// FramebufferWidth is the horizontal pixel count of the display.
	FramebufferWidth = 64
	// FramebufferHeight is the vertical pixel count of the display.
	FramebufferHeight = 32
)

// FrameBuffer is the 64x32 monochrome display. Pixels are flipped by the
// draw instruction and sampled by a renderer; there is no color depth.
type FrameBuffer struct {
	width  int
	height int
	pixels []bool
}

// NewFrameBuffer creates a cleared frame buffer at the machine's fixed size.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		width:  FramebufferWidth,
		height: FramebufferHeight,
		pixels: make([]bool, FramebufferWidth*FramebufferHeight),
	}
}

// At reports whether the pixel at the given coordinates is lit.
func (fb *FrameBuffer) At(x, y int) bool {
	return fb.pixels[y*fb.width+x]
}

// Flip toggles the pixel at the given coordinates and reports whether the
// toggle turned a lit pixel off, which counts as a sprite collision.
func (fb *FrameBuffer) Flip(x, y int) bool {
	i := y*fb.width + x
	fb.pixels[i] = !fb.pixels[i]
	return !fb.pixels[i]
}

// Clear turns every pixel off.
func (fb *FrameBuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = false
	}
}

// Snapshot returns a copy of the pixel states in row-major order.
func (fb *FrameBuffer) Snapshot() []bool {
	out := make([]bool, len(fb.pixels))
	copy(out, fb.pixels)
	return out
}

// String renders the display as text, one line per pixel row, lit pixels
// as full blocks. Used for headless snapshots and debugging.
func (fb *FrameBuffer) String() string {
	var sb strings.Builder
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			if fb.At(x, y) {
				sb.WriteRune('█')
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}

	return sb.String()
}

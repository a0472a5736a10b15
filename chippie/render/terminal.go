package render

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	chippie "github.com/valerio/go-chippie/chippie"
	"github.com/valerio/go-chippie/chippie/input"
	"github.com/valerio/go-chippie/chippie/timing"
	"github.com/valerio/go-chippie/chippie/video"
)

const (
	// scaleX doubles each pixel horizontally; terminal cells are roughly
	// twice as tall as they are wide.
	scaleX = 2

	// keyHoldDuration is how long a key counts as held after a key event.
	// Terminals report no key-up, so releases are synthesized once the
	// hold window expires without a repeat.
	keyHoldDuration = 150 * time.Millisecond
)

// TerminalRenderer runs a machine inside the terminal using tcell: the
// framebuffer drawn as double-width cells, a status line below it, and
// the usual 1234/QWER/ASDF/ZXCV mapping onto the hex pad.
type TerminalRenderer struct {
	screen  tcell.Screen
	machine *chippie.Machine
	running bool
	paused  bool
	lastErr error

	mu       sync.Mutex
	held     map[input.Key]time.Time
	sounding bool
}

// NewTerminalRenderer initializes the terminal and wraps a machine.
func NewTerminalRenderer(machine *chippie.Machine) (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}

	return &TerminalRenderer{
		screen:  screen,
		machine: machine,
		running: true,
		held:    make(map[input.Key]time.Time),
	}, nil
}

// Run drives the machine at 60 frames per second until ESC, Ctrl-C or a
// termination signal. An emulation error pauses the machine and shows up
// on the status line instead of tearing the terminal down.
func (t *TerminalRenderer) Run() error {
	defer func() {
		slog.Info("finishing terminal")
		t.screen.Fini()
	}()

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	go t.handleInput()

	ticker := time.NewTicker(timing.FrameDuration())
	defer ticker.Stop()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for t.running {
		select {
		case <-ticker.C:
			t.releaseExpiredKeys()
			if !t.paused {
				if err := t.machine.RunFrame(); err != nil {
					slog.Error("emulation error, pausing", "error", err)
					t.lastErr = err
					t.paused = true
				}
			}
			t.render()
			t.screen.Show()
		case <-signals:
			slog.Info("received signal to stop")
			t.running = false
			return nil
		}
	}

	return nil
}

func (t *TerminalRenderer) handleInput() {
	for t.running {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				t.running = false
			case tcell.KeyRune:
				t.handleRune(unicode.ToLower(ev.Rune()))
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *TerminalRenderer) handleRune(r rune) {
	if r == 'p' {
		t.paused = !t.paused
		return
	}

	key, ok := input.DefaultKeyMap[r]
	if !ok {
		return
	}

	t.mu.Lock()
	t.held[key] = time.Now()
	t.mu.Unlock()
	t.machine.SetKey(key, true)
}

// releaseExpiredKeys synthesizes key-up transitions for keys whose hold
// window has passed without a repeated key event.
func (t *TerminalRenderer) releaseExpiredKeys() {
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()
	for key, pressedAt := range t.held {
		if now.Sub(pressedAt) > keyHoldDuration {
			delete(t.held, key)
			t.machine.SetKey(key, false)
		}
	}
}

func (t *TerminalRenderer) render() {
	fb := t.machine.Framebuffer()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	t.screen.Clear()

	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			char := ' '
			if fb.At(x, y) {
				char = '█'
			}
			for sx := 0; sx < scaleX; sx++ {
				t.screen.SetContent(x*scaleX+sx, y, char, nil, style)
			}
		}
	}

	t.renderStatusLine()

	if t.machine.SoundActive() {
		if !t.sounding {
			t.screen.Beep()
		}
		t.sounding = true
	} else {
		t.sounding = false
	}
}

func (t *TerminalRenderer) renderStatusLine() {
	status := fmt.Sprintf("PC=%04X  I=%04X  cycles=%d  DT=%02X ST=%02X",
		t.machine.GetPC(), t.machine.GetI(), t.machine.GetCycles(),
		t.machine.DelayTimer(), t.machine.SoundTimer())

	switch {
	case t.lastErr != nil:
		status += fmt.Sprintf("  [error: %v]", t.lastErr)
	case t.paused:
		status += "  [paused]"
	case t.machine.IsWaitingForKey():
		status += "  [waiting for key]"
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for i, r := range []rune(status) {
		t.screen.SetContent(i, video.FramebufferHeight, r, nil, style)
	}
}

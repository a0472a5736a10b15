package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"
	chippie "github.com/valerio/go-chippie/chippie"
	"github.com/valerio/go-chippie/chippie/disasm"
	"github.com/valerio/go-chippie/chippie/render"
	"github.com/valerio/go-chippie/chippie/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "Chippie"
	app.Description = "A simple CHIP-8 emulator"
	app.Usage = "chippie [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run the emulator without a graphical interface",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "gui",
			Usage: "Use the SDL2 window instead of the terminal (requires an sdl2 build)",
		},
		cli.IntFlag{
			Name:  "clock",
			Usage: "CPU clock rate in cycles per second",
			Value: timing.DefaultClockRate,
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "Seed for the random instruction (0 = time-based)",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "trace",
			Usage: "Log every executed instruction at debug level",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save display snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save display snapshots (default: temp directory)",
		},
	}
	app.Action = runEmulator

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func runEmulator(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	machine, err := chippie.NewWithFile(romPath)
	if err != nil {
		return err
	}

	machine.SetCyclesPerFrame(timing.CyclesPerFrame(c.Int("clock")))

	if seed := c.Int64("seed"); seed != 0 {
		slog.Info("Seeding random source", "seed", seed)
		machine.SetSeed(seed)
	}

	if c.Bool("trace") {
		machine.SetTrace(func(addr, opcode uint16) {
			text, _ := disasm.Disassemble(opcode)
			slog.Debug("trace", "addr", fmt.Sprintf("0x%03X", addr),
				"opcode", fmt.Sprintf("%04X", opcode), "asm", text)
		})
	}

	if c.Bool("headless") {
		return runHeadless(c, machine, romPath)
	}

	if c.Bool("gui") {
		renderer, err := render.NewSDL2Renderer(machine)
		if err != nil {
			return err
		}
		return renderer.Run()
	}

	renderer, err := render.NewTerminalRenderer(machine)
	if err != nil {
		return err
	}
	return renderer.Run()
}

func runHeadless(c *cli.Context, machine *chippie.Machine, romPath string) error {
	frames := c.Int("frames")
	if frames <= 0 {
		return errors.New("headless mode requires --frames option with a positive value")
	}

	snapshotInterval := c.Int("snapshot-interval")
	snapshotDir := c.String("snapshot-dir")

	if snapshotInterval > 0 {
		if snapshotDir == "" {
			tempDir, err := os.MkdirTemp("", "chippie-snapshots-*")
			if err != nil {
				return fmt.Errorf("failed to create snapshot directory: %w", err)
			}
			snapshotDir = tempDir
		} else {
			if err := os.MkdirAll(snapshotDir, 0755); err != nil {
				return fmt.Errorf("failed to create snapshot directory: %w", err)
			}
		}
	}

	// Headless runs are for debugging, so log everything.
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	romName := filepath.Base(romPath)
	romName = strings.TrimSuffix(romName, filepath.Ext(romName))

	slog.Info("Running headless mode", "frames", frames,
		"snapshot_interval", snapshotInterval, "snapshot_dir", snapshotDir)

	// no pacing in headless mode, frames run back to back
	limiter := timing.NewNoOpLimiter()

	for i := 0; i < frames; i++ {
		limiter.WaitForNextFrame()
		if err := machine.RunFrame(); err != nil {
			return fmt.Errorf("frame %d: %w", i+1, err)
		}

		if snapshotInterval > 0 && (i+1)%snapshotInterval == 0 {
			snapshotPath := filepath.Join(snapshotDir, fmt.Sprintf("%s_frame_%d.txt", romName, i+1))
			if err := saveDisplaySnapshot(machine, snapshotPath); err != nil {
				slog.Error("Failed to save snapshot", "frame", i+1, "path", snapshotPath, "error", err)
			} else {
				slog.Info("Saved display snapshot", "frame", i+1, "path", snapshotPath)
			}
		}
	}

	slog.Info("Headless execution completed", "frames", frames, "cycles", machine.GetCycles())
	return nil
}

// saveDisplaySnapshot writes the current display as a text file.
func saveDisplaySnapshot(machine *chippie.Machine, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "# CHIP-8 Display Snapshot\n")
	fmt.Fprintf(file, "# Frame: %d, Cycles: %d, PC: 0x%03X\n",
		machine.GetFrames(), machine.GetCycles(), machine.GetPC())
	fmt.Fprintf(file, "# Resolution: 64x32 pixels\n")
	fmt.Fprintf(file, "#\n")

	_, err = file.WriteString(machine.Framebuffer().String())
	return err
}

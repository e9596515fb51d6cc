// Package main provides the CLI entry point for seqplay.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/seqplay/pkg/adapters/framesink"
	"github.com/user/seqplay/pkg/adapters/imagecodec"
	"github.com/user/seqplay/pkg/adapters/logger"
	"github.com/user/seqplay/pkg/adapters/osfilesystem"
	"github.com/user/seqplay/pkg/adapters/ticktimer"
	"github.com/user/seqplay/pkg/config"
	"github.com/user/seqplay/pkg/player"
	"github.com/user/seqplay/pkg/ports"
	"github.com/user/seqplay/pkg/sequence"
	"github.com/user/seqplay/pkg/sheet"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "seqplay",
		Usage:   "Inspect, export and play image sequences from directories, zip archives or single files.",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"C"}, Usage: "YAML configuration file."},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: "Log level (debug, info, warn, error)."},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: "Suppress all log output."},
		},
		Commands: []*cli.Command{
			framesCommand(),
			exportCommand(),
			sheetCommand(),
			playCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.LoadFromFile(path)
	}
	return config.Defaults(), nil
}

func buildLogger(c *cli.Context) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
}

// resolve builds a sequence from the first positional argument. An
// unsupported path is not an error, just an empty sequence.
func resolve(c *cli.Context, log ports.Logger) (*sequence.Sequence, error) {
	path := c.Args().First()
	if path == "" {
		return nil, cli.Exit("missing sequence path", 2)
	}
	seq := sequence.New(osfilesystem.New())
	seq.SetPath(path)
	if seq.FrameCount() == 0 {
		log.Warn("No frames found at %s", path)
	} else {
		log.Debug("Resolved %s: %d frames (%s)", path, seq.FrameCount(), seq.Kind())
	}
	return seq, nil
}

func framesCommand() *cli.Command {
	return &cli.Command{
		Name:      "frames",
		Usage:     "List the frames of a sequence in playback order.",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			log := buildLogger(c)
			seq, err := resolve(c, log)
			if err != nil {
				return err
			}
			for i, name := range seq.Frames() {
				fmt.Printf("%4d  %s\n", i, name)
			}
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Write every frame's raw bytes into a directory.",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: "Output directory."},
		},
		Action: func(c *cli.Context) error {
			log := buildLogger(c)
			seq, err := resolve(c, log)
			if err != nil {
				return err
			}
			out := c.String("output")
			log.Info("Exporting %d frames to %s", seq.FrameCount(), out)

			sink := framesink.New(out, osfilesystem.New())
			src := seq.ByteSource()
			for i, name := range seq.Frames() {
				data, err := src.ReadFrame(name)
				if err != nil {
					return fmt.Errorf("read frame %d: %w", i, err)
				}
				if err := sink.SaveFrame(i, name, data); err != nil {
					return fmt.Errorf("save frame %d: %w", i, err)
				}
			}
			log.Info("Exported %d frames", seq.FrameCount())
			return nil
		},
	}
}

func sheetCommand() *cli.Command {
	return &cli.Command{
		Name:      "sheet",
		Usage:     "Render a contact sheet of the whole sequence.",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: "Output PNG file path."},
			&cli.IntFlag{Name: "columns", Aliases: []string{"c"}, Usage: "Number of columns."},
		},
		Action: func(c *cli.Context) error {
			log := buildLogger(c)
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			seq, err := resolve(c, log)
			if err != nil {
				return err
			}

			opts := cfg.SheetOptions()
			if c.IsSet("columns") {
				opts.Columns = c.Int("columns")
			}
			log.Info("Rendering contact sheet (%d columns)", opts.Columns)

			codec := imagecodec.New()
			src := seq.ByteSource()
			frames := make([]sheet.Frame, 0, seq.FrameCount())
			for _, name := range seq.Frames() {
				frame := sheet.Frame{Name: name}
				if data, err := src.ReadFrame(name); err == nil {
					if img, err := codec.Decode(data); err == nil {
						frame.Image = img
					} else {
						log.Warn("Failed to decode frame %s: %s", name, err)
					}
				}
				frames = append(frames, frame)
			}

			img := sheet.Render(frames, opts)
			data, err := codec.EncodePNG(img)
			if err != nil {
				return err
			}
			out := c.String("output")
			if err := osfilesystem.New().WriteFile(out, data); err != nil {
				return fmt.Errorf("write sheet: %w", err)
			}
			log.Info("Contact sheet saved to %s", out)
			return nil
		},
	}
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     "Play a sequence on a timer, logging frame changes.",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "fps", Usage: "Playback rate in frames per second."},
			&cli.IntFlag{Name: "loops", Usage: "Number of full passes before stopping."},
		},
		Action: func(c *cli.Context) error {
			log := buildLogger(c)
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if c.IsSet("fps") {
				cfg.FPS = c.Int("fps")
			}
			if c.IsSet("loops") {
				cfg.Loops = c.Int("loops")
			}

			seq, err := resolve(c, log)
			if err != nil {
				return err
			}
			total := cfg.Loops * seq.FrameCount()
			if total == 0 {
				return nil
			}

			p := player.New(seq, ticktimer.New(), imagecodec.New(), log, cfg.PlayerOptions())

			done := make(chan struct{})
			var once sync.Once
			played := 0
			p.OnFrameChanged(func(index int) {
				log.Debug("Frame changed: %d", index)
				played++
				if played >= total {
					once.Do(func() { close(done) })
				}
			})

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			p.Start()
			select {
			case <-done:
			case <-sigCh:
				log.Warn(l10n.T("Interrupted, shutting down..."))
			}
			p.Stop()
			return nil
		},
	}
}

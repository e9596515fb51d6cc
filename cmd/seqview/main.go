// Package main provides the Fyne-based sequence viewer.
package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/user/seqplay/pkg/adapters/fyneview"
	"github.com/user/seqplay/pkg/adapters/imagecodec"
	"github.com/user/seqplay/pkg/adapters/logger"
	"github.com/user/seqplay/pkg/adapters/osfilesystem"
	"github.com/user/seqplay/pkg/adapters/ticktimer"
	"github.com/user/seqplay/pkg/config"
	"github.com/user/seqplay/pkg/player"
	"github.com/user/seqplay/pkg/ports"
	"github.com/user/seqplay/pkg/sequence"
)

const AppID = "com.user.seqview"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: seqview <path> [config.yaml]")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := config.Defaults()
	if len(os.Args) > 2 {
		loaded, err := config.LoadFromFile(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	log := logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))

	seq := sequence.New(osfilesystem.New())
	seq.SetPath(path)
	if seq.FrameCount() == 0 {
		log.Warn("No frames found at %s", path)
	}

	p := player.New(seq, ticktimer.New(), imagecodec.New(), log, cfg.PlayerOptions())

	myApp := app.NewWithID(AppID)
	win := myApp.NewWindow(cfg.Viewer.Title)
	win.Resize(fyne.NewSize(float32(cfg.Viewer.Width), float32(cfg.Viewer.Height)))

	viewer := fyneview.New(p)

	status := widget.NewLabel(statusText(p, 0))
	p.OnFrameChanged(func(index int) {
		fyne.Do(func() {
			status.SetText(statusText(p, index))
		})
	})

	playBtn := widget.NewButton("Play", func() {
		p.Start()
	})
	pauseBtn := widget.NewButton("Pause", func() {
		if p.Paused() {
			p.Resume()
		} else {
			p.Pause()
		}
	})
	stopBtn := widget.NewButton("Stop", func() {
		p.Stop()
	})

	controls := container.NewHBox(playBtn, pauseBtn, stopBtn, status)
	win.SetContent(container.NewBorder(nil, controls, nil, nil, viewer.CanvasObject()))

	win.SetCloseIntercept(func() {
		p.Stop()
		win.Close()
	})
	win.ShowAndRun()
}

func statusText(p *player.Player, index int) string {
	count := p.Sequence().FrameCount()
	if count == 0 {
		return "no frames"
	}
	return fmt.Sprintf("%d / %d  (%.0f%%)", index+1, count, p.Percent()*100)
}

// Package fyneview adapts the playback core to a Fyne UI: a canvas image
// that tracks the current frame, and an icon wrapper around it.
package fyneview

import (
	"path"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/user/seqplay/pkg/player"
	"github.com/user/seqplay/pkg/ports"
)

// Viewer displays the current frame of a player and refreshes the image
// on every frame change. Frame-changed notifications arrive on the timer
// goroutine, so refreshes are dispatched onto the Fyne main thread.
type Viewer struct {
	player *player.Player
	image  *canvas.Image
}

// New creates a Viewer over p and subscribes it to frame changes.
func New(p *player.Player) *Viewer {
	img := canvas.NewImageFromImage(p.CurrentImage())
	img.FillMode = canvas.ImageFillContain
	v := &Viewer{player: p, image: img}
	p.OnFrameChanged(func(int) {
		fyne.Do(v.refresh)
	})
	return v
}

func (v *Viewer) refresh() {
	v.image.Image = v.player.CurrentImage()
	v.image.Refresh()
}

// CanvasObject returns the image object to place in a container.
func (v *Viewer) CanvasObject() fyne.CanvasObject {
	return v.image
}

// Icon wraps the player's current frame as a Fyne resource, suitable for
// window icons or list entries. Returns nil when there is no current
// image, matching the accessor's nil-image convention.
func Icon(p *player.Player, codec ports.ImageCodec) fyne.Resource {
	img := p.CurrentImage()
	if img == nil {
		return nil
	}
	data, err := codec.EncodePNG(img)
	if err != nil {
		return nil
	}
	name := path.Base(p.CurrentFilename())
	return fyne.NewStaticResource(name, data)
}

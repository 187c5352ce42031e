package export

import (
	"fmt"
	"io"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/Dicklesworthstone/termalert/pkg/alert"
)

// WritePNG writes the wireframe as a PNG image.
func WritePNG(w io.Writer, a *alert.Alert) error {
	frames := Frames(a)
	panel := frames[0].Rect.Size

	dc := gg.NewContext(panel.Width+2*snapshotMargin, panel.Height+2*snapshotMargin)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	face, err := snapshotFace()
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	for i, f := range frames {
		x := float64(snapshotMargin + f.Rect.Origin.X)
		y := float64(snapshotMargin + f.Rect.Origin.Y)
		width := float64(f.Rect.Size.Width)
		height := float64(f.Rect.Size.Height)

		if i == 0 {
			dc.SetHexColor("#f5f5f5")
			dc.DrawRectangle(x, y, width, height)
			dc.Fill()
			dc.SetHexColor("#1c1c1c")
			dc.SetLineWidth(2)
		} else {
			dc.SetHexColor("#4a4a4a")
			dc.SetLineWidth(1)
		}
		dc.DrawRectangle(x, y, width, height)
		dc.Stroke()

		dc.SetHexColor("#888888")
		dc.DrawString(f.Label, x+2, y+12)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func snapshotFace() (font.Face, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size: 10,
		DPI:  72,
	})
	if err != nil {
		return nil, fmt.Errorf("build font face: %w", err)
	}
	return face, nil
}

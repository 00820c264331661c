// Package atlas renders a texture template matching the die UV layout.
//
// The template is six square tiles side by side. Tile n-1 holds face n: a
// disc covering the cap UV circle with the face's pips on it. Artists paint
// over the template and the result maps straight onto the generated mesh.
package atlas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/GeheimCoding/Dice/internal/config"
	"github.com/GeheimCoding/Dice/internal/die"
	"github.com/GeheimCoding/Dice/internal/logger"
)

// Pip geometry relative to the tile size.
const (
	pipRadius = 0.08
	pipOffset = 0.2
	capMargin = 0.02 // gap between the disc and the tile edge
	labelPad  = 4
)

// pipLayouts holds pip positions on a 3x3 grid (-1, 0, 1) for each face value.
var pipLayouts = [die.FaceCount + 1][][2]int{
	1: {{0, 0}},
	2: {{-1, -1}, {1, 1}},
	3: {{-1, -1}, {0, 0}, {1, 1}},
	4: {{-1, -1}, {1, -1}, {-1, 1}, {1, 1}},
	5: {{-1, -1}, {1, -1}, {0, 0}, {-1, 1}, {1, 1}},
	6: {{-1, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {1, 1}},
}

// Template holds the resolved atlas settings.
type Template struct {
	TileSize    int
	Supersample int
	Background  color.RGBA
	Face        color.RGBA
	Pip         color.RGBA
	Labels      bool
}

// FromConfig resolves an atlas config into a Template.
func FromConfig(cfg config.AtlasConfig) (*Template, error) {
	t := &Template{
		TileSize:    cfg.TileSize,
		Supersample: cfg.Supersample,
		Labels:      cfg.Labels,
	}

	var err error
	if t.Background, err = ParseHex(cfg.Background); err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	if t.Face, err = ParseHex(cfg.Face); err != nil {
		return nil, fmt.Errorf("face: %w", err)
	}
	if t.Pip, err = ParseHex(cfg.Pip); err != nil {
		return nil, fmt.Errorf("pip: %w", err)
	}
	if t.Supersample < 1 {
		t.Supersample = 1
	}
	if t.TileSize < 1 {
		return nil, fmt.Errorf("tile size %d must be positive", t.TileSize)
	}

	return t, nil
}

// Render draws the template. Discs and pips are drawn at Supersample times
// the final size and scaled down with Catmull-Rom so their edges are smooth;
// labels are drawn afterwards at native resolution.
func (t *Template) Render() *image.RGBA {
	defer logger.Track("atlas.Render")()

	ss := t.Supersample
	big := image.NewRGBA(image.Rect(0, 0, die.FaceCount*t.TileSize*ss, t.TileSize*ss))
	draw.Draw(big, big.Bounds(), image.NewUniform(t.Background), image.Point{}, draw.Src)

	tile := float64(t.TileSize * ss)
	for n := 1; n <= die.FaceCount; n++ {
		cx := (float64(n-1) + 0.5) * tile
		cy := 0.5 * tile
		fillDisc(big, cx, cy, (0.5-capMargin)*tile, t.Face)

		for _, p := range pipLayouts[n] {
			px := cx + float64(p[0])*pipOffset*tile
			py := cy + float64(p[1])*pipOffset*tile
			fillDisc(big, px, py, pipRadius*tile, t.Pip)
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, die.FaceCount*t.TileSize, t.TileSize))
	if ss == 1 {
		draw.Draw(out, out.Bounds(), big, image.Point{}, draw.Src)
	} else {
		draw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), draw.Src, nil)
	}

	if t.Labels {
		t.drawLabels(out)
	}

	logger.Debug("atlas rendered",
		zap.Int("width", out.Bounds().Dx()),
		zap.Int("height", out.Bounds().Dy()),
		zap.Int("supersample", ss),
	)
	return out
}

// drawLabels prints each face number in the top-left corner of its tile.
func (t *Template) drawLabels(img *image.RGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(t.Pip),
		Face: face,
	}
	for n := 1; n <= die.FaceCount; n++ {
		x := (n-1)*t.TileSize + labelPad
		y := labelPad + face.Ascent
		d.Dot = fixed.P(x, y)
		d.DrawString(strconv.Itoa(n))
	}
}

// fillDisc paints every pixel whose centre lies within r of (cx, cy).
func fillDisc(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	b := img.Bounds()
	x0, x1 := max(int(cx-r), b.Min.X), min(int(cx+r)+1, b.Max.X)
	y0, y1 := max(int(cy-r), b.Min.Y), min(int(cy+r)+1, b.Max.Y)
	r2 := r * r

	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Save renders the template and writes it to path, creating parent
// directories as needed.
func (t *Template) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating atlas file: %w", err)
	}

	if err := Encode(f, t.Render()); err != nil {
		f.Close()
		return fmt.Errorf("encoding atlas: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing atlas file: %w", err)
	}

	logger.Info("atlas written", zap.String("path", path))
	return nil
}

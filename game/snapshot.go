package game

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// SaveSnapshot renders the current scene offscreen at logical resolution and
// writes it as a PNG into dir (or the working directory when empty).
// Returns the file path.
func (g *Game) SaveSnapshot(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating snapshot directory: %w", err)
	}

	dc := g.renderScene()

	path := filepath.Join(dir, fmt.Sprintf("absorb_r%03d_t%06d.png", g.collector.Round(), g.tick))
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}
	return path, nil
}

// renderScene draws the field, objects and player into a gg context.
func (g *Game) renderScene() *gg.Context {
	dc := gg.NewContext(g.cfg.Screen.Width, g.cfg.Screen.Height)

	dc.SetColor(g.cfg.Screen.Background.RGBA())
	dc.Clear()

	query := g.objectFilter.Query()
	for query.Next() {
		pos, _, body, _, tint := query.Get()
		dc.SetColor(tint.Color)
		dc.DrawCircle(float64(pos.X), float64(pos.Y), float64(body.Radius))
		dc.Fill()
	}

	p := g.player
	dc.SetColor(g.cfg.Player.Color.RGBA())
	dc.DrawCircle(float64(p.Pos.X), float64(p.Pos.Y), float64(p.Radius))
	dc.Fill()

	return dc
}

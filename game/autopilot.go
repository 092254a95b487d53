package game

import (
	"math"

	"github.com/pthm-cable/absorb/components"
)

// Autopilot tuning
const (
	autopilotDangerGap = 120.0 // edge-to-edge distance at which larger objects repel
	autopilotDanger    = 3.0   // repulsion weight at contact
	autopilotEdgeGap   = 40.0  // distance from the field edge that pulls back inward
	autopilotDeadband  = 0.15  // force below this on an axis means no key held
)

// AutopilotDirection returns the arrow keys a simple scripted player would
// hold this frame: toward the nearest object it can absorb and away from
// nearby larger ones, while staying on the field.
func (g *Game) AutopilotDirection() components.Direction {
	p := g.player
	var fx, fy float64

	bestGap := math.Inf(1)
	var seekX, seekY float64

	query := g.objectFilter.Query()
	for query.Next() {
		pos, _, body, _, _ := query.Get()

		dx := float64(pos.X - p.Pos.X)
		dy := float64(pos.Y - p.Pos.Y)
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			continue
		}
		gap := dist - float64(p.Radius+body.Radius)
		ux, uy := dx/dist, dy/dist

		if body.Radius > p.Radius {
			if gap < autopilotDangerGap {
				w := autopilotDanger * (autopilotDangerGap - gap) / autopilotDangerGap
				fx -= ux * w
				fy -= uy * w
			}
			continue
		}

		if gap < bestGap {
			bestGap = gap
			seekX, seekY = ux, uy
		}
	}

	fx += seekX
	fy += seekY

	// Stay on the field
	w, h := float64(g.bounds.Width), float64(g.bounds.Height)
	x, y, r := float64(p.Pos.X), float64(p.Pos.Y), float64(p.Radius)
	if x-r < autopilotEdgeGap {
		fx += 1
	} else if x+r > w-autopilotEdgeGap {
		fx -= 1
	}
	if y-r < autopilotEdgeGap {
		fy += 1
	} else if y+r > h-autopilotEdgeGap {
		fy -= 1
	}

	return components.Direction{X: axis(fx), Y: axis(fy)}
}

// axis quantises a force component to an arrow key state.
func axis(f float64) float32 {
	switch {
	case f > autopilotDeadband:
		return 1
	case f < -autopilotDeadband:
		return -1
	default:
		return 0
	}
}

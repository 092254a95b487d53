package systems

import "github.com/pthm-cable/absorb/components"

// Overlaps reports whether the player and an object overlap: the distance
// between centres is strictly less than the sum of radii. There is no swept
// test, so a fast object can tunnel through the player between frames.
func Overlaps(player *components.Player, pos components.Position, body components.Body) bool {
	return distance(player.Pos.X, player.Pos.Y, pos.X, pos.Y) < player.Radius+body.Radius
}

// Contact is the result of an overlap between the player and an object.
type Contact uint8

const (
	ContactNone   Contact = iota
	ContactAbsorb         // object is not larger; it is consumed
	ContactFatal          // object is strictly larger; game over
)

// Resolve classifies the player/object relation for this frame.
func Resolve(player *components.Player, pos components.Position, body components.Body) Contact {
	if !Overlaps(player, pos, body) {
		return ContactNone
	}
	if body.Radius > player.Radius {
		return ContactFatal
	}
	return ContactAbsorb
}

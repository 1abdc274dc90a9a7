package navigator

import "fmt"

// Direction is one of the six navigation commands.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
	DirPrev
	DirNext
)

// family groups the six directions into the three candidate-selection
// policies. Left/right share one candidate list and sort order, as do
// up/down and prev/next; only the offset sign differs within a family.
type family int

const (
	familyHorizontal family = iota
	familyVertical
	familySequential
)

func (d Direction) family() family {
	switch d {
	case DirLeft, DirRight:
		return familyHorizontal
	case DirUp, DirDown:
		return familyVertical
	default:
		return familySequential
	}
}

// forward reports whether d moves forward along its family's sort order.
// Right, down, and next are forward; their counterparts walk backward.
func (d Direction) forward() bool {
	return d == DirRight || d == DirDown || d == DirNext
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirPrev:
		return "prev"
	case DirNext:
		return "next"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection maps a command name to its Direction. "previous" is
// accepted as an alias for "prev".
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "prev", "previous":
		return DirPrev, nil
	case "next":
		return DirNext, nil
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}

// Directions lists all six commands in declaration order.
func Directions() []Direction {
	return []Direction{DirLeft, DirRight, DirUp, DirDown, DirPrev, DirNext}
}

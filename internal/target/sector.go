package target

import "image"

// Sector is the coarse position of a point relative to the centre zone.
type Sector string

// Sector values. SectorError is reported when no target was found, and
// would also be reported for a point no rule accepts.
const (
	SectorAboveLeft  Sector = "above-left"
	SectorAbove      Sector = "above"
	SectorAboveRight Sector = "above-right"
	SectorLeft       Sector = "left"
	SectorCentre     Sector = "centre"
	SectorRight      Sector = "right"
	SectorBelowLeft  Sector = "below-left"
	SectorBelow      Sector = "below"
	SectorBelowRight Sector = "below-right"
	SectorError      Sector = "error"
)

// Sectors lists the nine positional sectors in row-major order.
var Sectors = []Sector{
	SectorAboveLeft, SectorAbove, SectorAboveRight,
	SectorLeft, SectorCentre, SectorRight,
	SectorBelowLeft, SectorBelow, SectorBelowRight,
}

// String implements fmt.Stringer.
func (s Sector) String() string {
	return string(s)
}

// Valid reports whether s is one of the nine positional sectors.
func (s Sector) Valid() bool {
	for _, v := range Sectors {
		if s == v {
			return true
		}
	}
	return false
}

// Classify maps p to a sector of b. Rules are tried in order and the first
// match wins; every comparison is inclusive, so points on an edge of the
// centre zone belong to whichever rule is tried first.
//
// The "right" rule tests x >= Left rather than x >= Right. Any point it could
// accept with x <= Right has already been taken by "centre", so the
// difference is invisible, but the comparison is kept as written.
func Classify(p image.Point, b Boundary) Sector {
	x, y := p.X, p.Y
	switch {
	case y <= b.Top && x <= b.Left:
		return SectorAboveLeft
	case y <= b.Top && x >= b.Left && x <= b.Right:
		return SectorAbove
	case y <= b.Top && x >= b.Right:
		return SectorAboveRight
	case y >= b.Top && y <= b.Bottom && x >= b.Left && x <= b.Right:
		return SectorCentre
	case y >= b.Top && y <= b.Bottom && x <= b.Left:
		return SectorLeft
	case y >= b.Top && y <= b.Bottom && x >= b.Left:
		return SectorRight
	case y >= b.Bottom && x <= b.Left:
		return SectorBelowLeft
	case y >= b.Bottom && x >= b.Left && x <= b.Right:
		return SectorBelow
	case y >= b.Bottom && x >= b.Right:
		return SectorBelowRight
	default:
		return SectorError
	}
}

package kinematic

// This package includes the small amount of 2D vector math used for local prediction.

// Vector is a position or displacement in arena units.
type Vector struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Bounds is an axis aligned rectangle, inclusive on every edge.
type Bounds struct {
	MinX float32
	MinY float32
	MaxX float32
	MaxY float32
}

// Add returns the sum of v and other.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Displacement returns the displacement for a unit input direction moved at the given speed.
func Displacement(dx float32, dy float32, speed float32) Vector {
	return Vector{X: dx, Y: dy}.Scale(speed)
}

// Clamp returns v with each axis limited to the bounds.
func (b Bounds) Clamp(v Vector) Vector {
	return Vector{
		X: clamp(v.X, b.MinX, b.MaxX),
		Y: clamp(v.Y, b.MinY, b.MaxY),
	}
}

// Contains returns true if v lies inside the bounds.
func (b Bounds) Contains(v Vector) bool {
	return v.X >= b.MinX && v.X <= b.MaxX && v.Y >= b.MinY && v.Y <= b.MaxY
}

func clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

package geo

// Square is an axis-aligned box with inclusive corners.
// BottomLeft is componentwise <= TopRight.
type Square struct {
	BottomLeft Vector
	TopRight   Vector
}

// WithCorners builds a Square from any two opposite corners.
func WithCorners(a, b Vector) Square {
	return Square{
		BottomLeft: Vector{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		TopRight:   Vector{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

func (s Square) Contains(v Vector) bool {
	return v.X >= s.BottomLeft.X && v.X <= s.TopRight.X &&
		v.Y >= s.BottomLeft.Y && v.Y <= s.TopRight.Y
}

// Width and Height count cells, so a single-cell square is 1x1.
func (s Square) Width() int {
	return int(s.TopRight.X) - int(s.BottomLeft.X) + 1
}

func (s Square) Height() int {
	return int(s.TopRight.Y) - int(s.BottomLeft.Y) + 1
}

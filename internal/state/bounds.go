package state

// boundsOf calculates the bounding box of a set of points.
func boundsOf(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y

	for _, point := range points {
		if point.X < minX {
			minX = point.X
		}
		if point.X > maxX {
			maxX = point.X
		}
		if point.Y < minY {
			minY = point.Y
		}
		if point.Y > maxY {
			maxY = point.Y
		}
	}

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Pad grows the box by d on every side.
func (r Rect) Pad(d float32) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Union returns the smallest box covering both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := r.X
	if o.X < minX {
		minX = o.X
	}

	minY := r.Y
	if o.Y < minY {
		minY = o.Y
	}

	maxX := r.X + r.Width
	if o.X+o.Width > maxX {
		maxX = o.X + o.Width
	}

	maxY := r.Y + r.Height
	if o.Y+o.Height > maxY {
		maxY = o.Y + o.Height
	}

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ShapesBounds returns the box covering every shape including half its
// stroke width. ok is false when shapes is empty.
func ShapesBounds(shapes []Shape) (r Rect, ok bool) {
	for i, s := range shapes {
		b := s.Bounds().Pad(float32(s.Width) / 2)
		if i == 0 {
			r = b
			continue
		}
		r = r.Union(b)
	}
	return r, len(shapes) > 0
}

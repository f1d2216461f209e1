package palette

// FractColor maps a fullness fraction to red (0) through yellow (0.5) to
// green (1).
func FractColor(fraction float32) Color {
	c := Red
	if fraction <= 0.5 {
		c.G = fraction * 2
	} else {
		c.R = (1 - fraction) * 2
		c.G = 1
	}
	return c
}

// HeatmapColor maps an unbounded magnitude onto
// gray, blue, cyan, green, yellow, red at breakpoints 0, 1, 4, 10, 40.
func HeatmapColor(value float32) Color {
	c := Color{0.1, 0.1, 0.1, 1}
	switch {
	case value < 1:
		c.B += value * 0.9
	case value < 4:
		c.B = 1
		c.G += ((value - 1) / 3) * 0.9
	case value < 10:
		c.G = 1
		c.B += 0.9 - ((value-4)/6)*0.9
	case value < 40:
		c.G = 1
		c.R += ((value - 10) / 30) * 0.9
	default:
		c.R = 1
		c.G += 0.9 - (1-(1/(value-40+1)))*0.9
	}
	return c
}

// Gradient generates n colors with an even hue spread over four segments:
// red to yellow, yellow to green, green to cyan, cyan to blue.
func Gradient(n int) []Color {
	if n <= 0 {
		return nil
	}
	out := make([]Color, n)
	if n == 1 {
		out[0] = Red
		return out
	}
	for i := range out {
		pos := float32(4*i) / float32(n-1)
		c := Color{A: 1}
		switch {
		case pos <= 1:
			c.R, c.G = 1, pos
		case pos <= 2:
			c.R, c.G = 2-pos, 1
		case pos <= 3:
			c.G, c.B = 1, pos-2
		default:
			c.G, c.B = 4-pos, 1
		}
		out[i] = c
	}
	return out
}

// StageGradient caches a Gradient and rebuilds it only when its length changes.
type StageGradient struct {
	colors []Color
}

// Colors returns the cached gradient of length n.
func (g *StageGradient) Colors(n int) []Color {
	if g.colors == nil || len(g.colors) != n {
		g.colors = Gradient(n)
	}
	return g.colors
}

// Len returns the cached length.
func (g *StageGradient) Len() int {
	return len(g.colors)
}

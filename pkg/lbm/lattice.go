package lbm

// Q is the number of discrete velocities in the D2Q9 stencil.
const Q = 9

// Direction indices. Rows grow towards North, columns towards East.
const (
	Rest = iota
	East
	North
	West
	South
	NorthEast
	NorthWest
	SouthWest
	SouthEast
)

var (
	// CX and CY are the lattice velocity components of each direction.
	CX = [Q]int{0, 1, 0, -1, 0, 1, -1, -1, 1}
	CY = [Q]int{0, 0, 1, 0, -1, 1, 1, -1, -1}

	// Weights are the quadrature weights; they sum to 1.
	Weights = [Q]float64{
		4.0 / 9,
		1.0 / 9, 1.0 / 9, 1.0 / 9, 1.0 / 9,
		1.0 / 36, 1.0 / 36, 1.0 / 36, 1.0 / 36,
	}

	// Opposite maps each direction to its reverse.
	Opposite = [Q]int{Rest, West, South, East, North, SouthWest, SouthEast, NorthEast, NorthWest}
)


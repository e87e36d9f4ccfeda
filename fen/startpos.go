package fen

// StartingPlacement returns the standard initial position in input
// coordinates: row 0 holds Black's back rank, row 7 White's.
func StartingPlacement() Placement {
	const backRank = "rnbqkbnr"
	p := make(Placement, 32)
	for col := 0; col < Files; col++ {
		black := Symbol(backRank[col])
		p[Square{Row: 0, Col: col}] = black
		p[Square{Row: 1, Col: col}] = 'p'
		p[Square{Row: 6, Col: col}] = 'P'
		p[Square{Row: 7, Col: col}] = black - 'a' + 'A'
	}
	return p
}

package engine

// Score returns side's disk count minus the opponent's. Positive values
// favour side.
func Score(b *Board, side Side) int {
	own, opp := side.Cell(), side.Opponent().Cell()
	score := 0
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			switch b[row][col] {
			case own:
				score++
			case opp:
				score--
			}
		}
	}
	return score
}

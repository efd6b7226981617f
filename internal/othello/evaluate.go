package othello

// squareWeights is the positional value of each square.
var squareWeights = [Size][Size]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, 5, 1, 1, 5, -2, 10},
	{5, -2, 1, 1, 1, 1, -2, 5},
	{5, -2, 1, 1, 1, 1, -2, 5},
	{10, -2, 5, 1, 1, 5, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// EvaluateBoard returns the positional score of the board for player.
func EvaluateBoard(board Board, player Color) int {
	opponent := player.Opponent()
	score := 0

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch board[row][col] {
			case player:
				score += squareWeights[row][col]
			case opponent:
				score -= squareWeights[row][col]
			}
		}
	}

	return score
}

package othello

import (
	"log/slog"
	"math"
	"time"
)

const (
	// terminalMultiplier makes a finished game outweigh any heuristic score.
	terminalMultiplier = 1000

	minScore = math.MinInt
	maxScore = math.MaxInt
)

// Difficulty levels.
const (
	DifficultyEasy   = 1
	DifficultyMedium = 2
	DifficultyHard   = 3
)

// SearchDepth returns the search depth for a difficulty level. The second
// return value is false for levels that pick a random move instead.
func SearchDepth(difficulty int) (int, bool) {
	switch difficulty {
	case DifficultyMedium:
		return 3, true
	case DifficultyHard:
		return 7, true
	default:
		return 0, false
	}
}

// Bot searches for the best move with alpha-beta pruning.
type Bot struct {
	startTime time.Time
	nodes     uint64
}

// NewBot creates a new bot.
func NewBot() *Bot {
	return &Bot{
		startTime: time.Now(),
		nodes:     0,
	}
}

// GetBestMove returns the best move for player using a search of the given depth.
func GetBestMove(board Board, depth int, player Color) Move {
	bot := NewBot()
	move := bot.GetBestMove(board, depth, player)
	bot.logStats(depth)
	return move
}

// GetBestMove returns the best move for player. The first of equally good moves
// wins. NoMove is returned if player cannot move.
func (b *Bot) GetBestMove(board Board, depth int, player Color) Move {
	best := NoMove
	bestScore := minScore

	for _, move := range board.GetValidMoves(player) {
		child := board
		child.DoMove(move.Row, move.Col, player)

		// A sibling can only win with a score above bestScore, so that is the lower bound.
		score := b.alphaBeta(child, depth-1, bestScore, maxScore, false, player)

		if score > bestScore || best.IsNoMove() {
			bestScore = score
			best = move
			best.Score = score
		}
	}

	return best
}

// alphaBeta returns the score of board for root. When maximizing is true root
// is to move, otherwise its opponent is.
func (b *Bot) alphaBeta(board Board, depth int, alpha int, beta int, maximizing bool, root Color) int {
	b.nodes++

	turn := root
	if !maximizing {
		turn = root.Opponent()
	}

	moves := board.GetValidMoves(turn)

	if len(moves) == 0 && !board.HasMoves(turn.Opponent()) {
		return EvaluateBoard(board, root) * terminalMultiplier
	}

	if depth <= 0 {
		return EvaluateBoard(board, root)
	}

	if len(moves) == 0 {
		return b.alphaBeta(board, depth-1, alpha, beta, !maximizing, root)
	}

	if maximizing {
		best := minScore
		for _, move := range moves {
			child := board
			child.DoMove(move.Row, move.Col, turn)

			score := b.alphaBeta(child, depth-1, alpha, beta, false, root)
			best = max(best, score)
			alpha = max(alpha, score)

			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := maxScore
	for _, move := range moves {
		child := board
		child.DoMove(move.Row, move.Col, turn)

		score := b.alphaBeta(child, depth-1, alpha, beta, true, root)
		best = min(best, score)
		beta = min(beta, score)

		if beta <= alpha {
			break
		}
	}
	return best
}

func (b *Bot) logStats(depth int) {
	elapsedSeconds := time.Since(b.startTime).Seconds()

	nodesPerSecond := int64(0)
	if elapsedSeconds > 0.000001 {
		nodesPerSecond = int64(float64(b.nodes) / elapsedSeconds)
	}

	slog.Debug("search done", "depth", depth, "nodes", b.nodes, "seconds", elapsedSeconds, "nodes_per_second", nodesPerSecond)
}

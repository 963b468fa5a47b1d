// internal/game/minimax.go
package game

import "github.com/issuearcade/tictactoe/internal/models"

const (
	winScore = 10000

	// searchDepthLimit is a safety bound only; a 3x3 board bottoms out at
	// depth 9 well before reaching it.
	searchDepthLimit = 16
)

// BestMoves runs an exhaustive minimax search for the robot side and returns
// every empty cell achieving the best attainable score, so the caller can
// pick uniformly at random among equally optimal moves. The grid is copied;
// the caller's board is never touched.
func BestMoves(grid models.Grid, robot, human models.Color) []models.Coordinate {
	var best []models.Coordinate
	bestScore := 0
	for _, cell := range grid.EmptyCells() {
		grid.Set(cell, robot)
		score := search(&grid, robot, human, 1, false)
		grid.Set(cell, "")

		if len(best) == 0 || score > bestScore {
			best = append(best[:0], cell)
			bestScore = score
		} else if score == bestScore {
			best = append(best, cell)
		}
	}
	return best
}

// search scores the position for the robot, depth-first over the remaining
// empty cells with restore-on-backtrack. robotTurn marks the side to move.
// Wins are scored winScore/depth so the search prefers the fastest win and
// the slowest loss.
func search(grid *models.Grid, robot, human models.Color, depth int, robotTurn bool) int {
	if winner, tie := Evaluate(grid); winner != "" || tie {
		switch winner {
		case robot:
			return winScore / depth
		case human:
			return -winScore / depth
		}
		return 0
	}
	if depth >= searchDepthLimit {
		return 0
	}

	color := human
	if robotTurn {
		color = robot
	}

	scored := false
	best := 0
	for _, cell := range grid.EmptyCells() {
		grid.Set(cell, color)
		score := search(grid, robot, human, depth+1, !robotTurn)
		grid.Set(cell, "")

		if !scored {
			best = score
			scored = true
		} else if robotTurn && score > best {
			best = score
		} else if !robotTurn && score < best {
			best = score
		}
	}
	return best
}

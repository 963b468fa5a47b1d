// internal/game/rules.go
package game

import "github.com/issuearcade/tictactoe/internal/models"

// winLines enumerates the 8 winning triples: rows, then columns, then
// diagonals. The scan order is part of the evaluator contract.
var winLines = [8][3]models.Coordinate{
	// rows
	{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}},
	{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}},
	{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}},

	// columns
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}},

	// diagonals
	{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
	{{X: 0, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 0}},
}

// Evaluate checks the grid for a finished game. It returns the winning color
// when a line is uniformly colored, tie=true when the board is full with no
// winner, and ("", false) while the game is still open. It is pure and also
// serves as the terminal test inside the minimax search.
func Evaluate(g *models.Grid) (winner models.Color, tie bool) {
	for _, line := range winLines {
		a, b, c := g.At(line[0]), g.At(line[1]), g.At(line[2])
		if a != "" && a == b && b == c {
			return a, false
		}
	}
	return "", g.Full()
}

// internal/models/chess.go
package models

import "encoding/json"

// Color is a chess piece color drawn from the fixed palette.
type Color string

const (
	ColorBlack  Color = "black"
	ColorWhite  Color = "white"
	ColorBrown  Color = "brown"
	ColorPurple Color = "purple"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
)

// Colors is the full palette in display order.
var Colors = []Color{
	ColorBlack,
	ColorWhite,
	ColorBrown,
	ColorPurple,
	ColorGreen,
	ColorYellow,
	ColorOrange,
	ColorRed,
}

var colorEmojis = map[Color]string{
	ColorBlack:  "⚫",
	ColorWhite:  "⚪",
	ColorBrown:  "🟤",
	ColorPurple: "🟣",
	ColorGreen:  "🟢",
	ColorYellow: "🟡",
	ColorOrange: "🟠",
	ColorRed:    "🔴",
}

// Emoji returns the circle emoji for a color, or "" for the empty color.
func (c Color) Emoji() string {
	return colorEmojis[c]
}

// Valid reports whether c is a member of the palette.
func (c Color) Valid() bool {
	_, ok := colorEmojis[c]
	return ok
}

// UnusedColors returns the palette minus the given colors, preserving order.
func UnusedColors(used []Color) []Color {
	unused := make([]Color, 0, len(Colors))
	for _, c := range Colors {
		taken := false
		for _, u := range used {
			if c == u {
				taken = true
				break
			}
		}
		if !taken {
			unused = append(unused, c)
		}
	}
	return unused
}

// Coordinate is a zero-based cell position; X is the row, Y the column.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// OriginCoordinate carries the textual tokens the user typed alongside the
// normalized position, so replies and the step log can echo the user's own
// notation (OX is the row digit, OY the column letter).
type OriginCoordinate struct {
	Coordinate
	OX string `json:"ox"`
	OY string `json:"oy"`
}

// Grid is the 3x3 board. The zero Color marks an empty cell in memory; on
// the wire empty cells are null, matching the embedded meta layout.
type Grid [3][3]Color

func (g Grid) MarshalJSON() ([]byte, error) {
	var cells [3][3]*Color
	for x := range g {
		for y := range g[x] {
			if g[x][y] != "" {
				c := g[x][y]
				cells[x][y] = &c
			}
		}
	}
	return json.Marshal(cells)
}

func (g *Grid) UnmarshalJSON(data []byte) error {
	var cells [3][3]*Color
	if err := json.Unmarshal(data, &cells); err != nil {
		return err
	}
	for x := range cells {
		for y := range cells[x] {
			if cells[x][y] != nil {
				g[x][y] = *cells[x][y]
			} else {
				g[x][y] = ""
			}
		}
	}
	return nil
}

// At returns the color at a coordinate.
func (g *Grid) At(c Coordinate) Color {
	return g[c.X][c.Y]
}

// Set writes a color at a coordinate.
func (g *Grid) Set(c Coordinate, color Color) {
	g[c.X][c.Y] = color
}

// Full reports whether no empty cell remains.
func (g *Grid) Full() bool {
	for x := range g {
		for y := range g[x] {
			if g[x][y] == "" {
				return false
			}
		}
	}
	return true
}

// EmptyCells lists the coordinates of all empty cells in row-major order.
func (g *Grid) EmptyCells() []Coordinate {
	var cells []Coordinate
	for x := range g {
		for y := range g[x] {
			if g[x][y] == "" {
				cells = append(cells, Coordinate{X: x, Y: y})
			}
		}
	}
	return cells
}

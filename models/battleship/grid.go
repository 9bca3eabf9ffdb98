package battleship

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

// Visible state of a single grid position.
const (
	CellStateEmpty uint8 = iota
	CellStateOccupied
	CellStateMiss
	CellStateHit
)

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

type Direction uint8

const (
	DirectionNorth Direction = iota
	DirectionEast
	DirectionSouth
	DirectionWest
)

// Delta returns the unit step of the direction. x grows east, y grows south.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionNorth:
		return 0, -1
	case DirectionEast:
		return 1, 0
	case DirectionSouth:
		return 0, 1
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionNorth:
		return "N"
	case DirectionEast:
		return "E"
	case DirectionSouth:
		return "S"
	default:
		return "W"
	}
}

func ParseDirection(token string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "N", "NORTH":
		return DirectionNorth, nil
	case "E", "EAST":
		return DirectionEast, nil
	case "S", "SOUTH":
		return DirectionSouth, nil
	case "W", "WEST":
		return DirectionWest, nil
	default:
		return 0, cerr.ErrInvalidDirection(token)
	}
}

// ParseCoordinates converts raw text coordinates coming from an input
// boundary (prompt, query param) into grid coordinates.
func ParseCoordinates(xToken, yToken string) (int, int, error) {
	xToken = strings.TrimSpace(xToken)
	yToken = strings.TrimSpace(yToken)
	if xToken == "" || yToken == "" {
		return 0, 0, cerr.ErrMissingAttackCoordinates()
	}

	x, err := strconv.Atoi(xToken)
	if err != nil {
		return 0, 0, cerr.ErrValueNotInt(xToken)
	}
	y, err := strconv.Atoi(yToken)
	if err != nil {
		return 0, 0, cerr.ErrValueNotInt(yToken)
	}
	return x, y, nil
}

// cell keeps a back reference to its ship as an index into the board
// ship collection. The collection is the sole owner.
type cell struct {
	state   uint8
	shipIdx int
}

type grid [][]cell

// Creates a new default grid. All positions are empty
// with no ship reference.
func newGrid(size int) grid {
	g := make(grid, size)
	for y := 0; y < size; y++ {
		g[y] = make([]cell, size)
		for x := 0; x < size; x++ {
			g[y][x] = cell{state: CellStateEmpty, shipIdx: -1}
		}
	}
	return g
}

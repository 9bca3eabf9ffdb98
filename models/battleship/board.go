package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

const (
	BoardMinSize = 5
	BoardMaxSize = 10
)

type PlacementFailureReason string

const (
	PlacementFailureOutOfBounds  PlacementFailureReason = "out-of-bounds"
	PlacementFailureCellOccupied PlacementFailureReason = "cell-occupied"
)

// PlacementOutcome is a reported result, not an error. A failed placement
// is an expected game event and callers retry with other coordinates.
type PlacementOutcome struct {
	Placed   bool
	Ship     *Ship
	Reason   PlacementFailureReason
	Position Coordinates
	Segment  int
}

type AttackResult uint8

const (
	AttackResultMiss AttackResult = iota
	AttackResultHit
	AttackResultSunk
	AttackResultSunkAll
)

func (ar AttackResult) String() string {
	switch ar {
	case AttackResultMiss:
		return "miss"
	case AttackResultHit:
		return "hit"
	case AttackResultSunk:
		return "sunk"
	default:
		return "sunk-all"
	}
}

type Board struct {
	size  int
	cells grid
	ships []*Ship
}

func NewBoard(size int) (*Board, error) {
	if size < BoardMinSize || size > BoardMaxSize {
		return nil, cerr.ErrInvalidBoardSize(size)
	}
	return &Board{
		size:  size,
		cells: newGrid(size),
		ships: make([]*Ship, 0),
	}, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

func (b *Board) CellState(x, y int) (uint8, error) {
	if !b.inBounds(x, y) {
		return 0, cerr.ErrXorYOutOfGridBound(x, y)
	}
	return b.cells[y][x].state, nil
}

// PlaceShip lays a ship of the given length starting at (x, y) and stepping
// toward dir. Every segment is validated in order before any cell is
// mutated, so a failed placement leaves the board untouched.
func (b *Board) PlaceShip(x, y, length int, dir Direction) (PlacementOutcome, error) {
	if dir > DirectionWest {
		return PlacementOutcome{}, cerr.ErrInvalidDirection(dir.String())
	}
	sh, err := NewShip(length)
	if err != nil {
		return PlacementOutcome{}, err
	}

	dx, dy := dir.Delta()
	segments := make([]Coordinates, length)
	for i := 0; i < length; i++ {
		cx, cy := x+dx*i, y+dy*i
		if !b.inBounds(cx, cy) {
			return PlacementOutcome{
				Reason:   PlacementFailureOutOfBounds,
				Position: NewCoordinates(cx, cy),
				Segment:  i,
			}, nil
		}
		if b.cells[cy][cx].state != CellStateEmpty {
			return PlacementOutcome{
				Reason:   PlacementFailureCellOccupied,
				Position: NewCoordinates(cx, cy),
				Segment:  i,
			}, nil
		}
		segments[i] = NewCoordinates(cx, cy)
	}

	b.ships = append(b.ships, sh)
	shipIdx := len(b.ships) - 1
	for _, seg := range segments {
		b.cells[seg.Y][seg.X] = cell{state: CellStateOccupied, shipIdx: shipIdx}
	}

	return PlacementOutcome{Placed: true, Ship: sh}, nil
}

// ReceiveAttack resolves one attack against the board. Attacking the same
// position twice is a usage contract violation and fails hard. The global
// sunk-all condition is checked before the per-ship one so that exactly one
// strongest outcome is reported per attack.
func (b *Board) ReceiveAttack(x, y int) (AttackResult, error) {
	if !b.inBounds(x, y) {
		return 0, cerr.ErrXorYOutOfGridBound(x, y)
	}

	c := &b.cells[y][x]
	switch c.state {
	case CellStateMiss, CellStateHit:
		return 0, cerr.ErrPositionAlreadyAttacked(x, y)

	case CellStateOccupied:
		sh := b.ships[c.shipIdx]
		sh.GotHit()
		c.state = CellStateHit

		if b.allShipsSunk() {
			return AttackResultSunkAll, nil
		}
		if sh.IsSunk() {
			return AttackResultSunk, nil
		}
		return AttackResultHit, nil

	default:
		c.state = CellStateMiss
		return AttackResultMiss, nil
	}
}

// Ships returns a snapshot of the ship collection.
func (b *Board) Ships() []*Ship {
	ships := make([]*Ship, len(b.ships))
	copy(ships, b.ships)
	return ships
}

func (b *Board) allShipsSunk() bool {
	for _, sh := range b.ships {
		if !sh.IsSunk() {
			return false
		}
	}
	return len(b.ships) > 0
}

// String dumps the board for debugging purposes.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			switch b.cells[y][x].state {
			case CellStateOccupied:
				sb.WriteByte('S')
			case CellStateMiss:
				sb.WriteByte('o')
			case CellStateHit:
				sb.WriteByte('x')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

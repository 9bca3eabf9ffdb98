package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"

	"golang.org/x/exp/rand"
)

type Strategy uint8

const (
	StrategyRandom Strategy = iota
	StrategyHuntTarget
)

func (s Strategy) String() string {
	if s == StrategyHuntTarget {
		return "hunt-and-target"
	}
	return "random"
}

func ParseStrategy(token string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "random", "":
		return StrategyRandom, nil
	case "hunt-and-target", "hunt":
		return StrategyHuntTarget, nil
	default:
		return 0, cerr.ErrInvalidStrategy(token)
	}
}

// randomCoordinates rejection-samples until it finds a position outside the
// attack memory. The caller guards against full memory, so the loop always
// terminates.
func randomCoordinates(opponent *Board, memory map[Coordinates]struct{}, rng *rand.Rand) Coordinates {
	for {
		c := NewCoordinates(rng.Intn(opponent.Size()), rng.Intn(opponent.Size()))
		if _, attacked := memory[c]; !attacked {
			return c
		}
	}
}

// huntTargetCoordinates runs three phases in order:
//  1. target: around any visible hit, fire at the first orthogonal
//     neighbor (+x, -x, +y, -y) not yet attacked
//  2. hunt: random cell on the (x+y)-even checkerboard, which intersects
//     every ship of length >= 2
//  3. fallback: first remaining cell in row-major order
//
// The strategy reads only visible cell states, never ship positions.
func huntTargetCoordinates(opponent *Board, memory map[Coordinates]struct{}, rng *rand.Rand) Coordinates {
	size := opponent.Size()

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if opponent.cells[y][x].state != CellStateHit {
				continue
			}
			neighbors := [4]Coordinates{
				NewCoordinates(x+1, y),
				NewCoordinates(x-1, y),
				NewCoordinates(x, y+1),
				NewCoordinates(x, y-1),
			}
			for _, n := range neighbors {
				if !opponent.inBounds(n.X, n.Y) {
					continue
				}
				if _, attacked := memory[n]; attacked {
					continue
				}
				return n
			}
		}
	}

	checkerboard := make([]Coordinates, 0, size*size/2)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%2 != 0 {
				continue
			}
			c := NewCoordinates(x, y)
			if _, attacked := memory[c]; !attacked {
				checkerboard = append(checkerboard, c)
			}
		}
	}
	if len(checkerboard) > 0 {
		return checkerboard[rng.Intn(len(checkerboard))]
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := NewCoordinates(x, y)
			if _, attacked := memory[c]; !attacked {
				return c
			}
		}
	}

	// Unreachable: the exhaustion guard runs before coordinate generation.
	panic("no attackable cells left")
}

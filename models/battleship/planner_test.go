package battleship

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func occupiedCellCount(t *testing.T, b *Board) int {
	t.Helper()
	count := 0
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			state, err := b.CellState(x, y)
			require.NoError(t, err)
			if state == CellStateOccupied {
				count++
			}
		}
	}
	return count
}

func TestDefaultFleetTableRespectsDensityCap(t *testing.T) {
	for size, fleet := range DefaultFleetTable() {
		fleetCells := 0
		for _, length := range fleet {
			fleetCells += length
		}
		assert.LessOrEqualf(t, float64(fleetCells), maxFleetDensity*float64(size*size),
			"fleet for size %d busts the density cap", size)
	}
}

func TestPlaceFleet(t *testing.T) {
	planner := NewPlanner(WithRandSource(rand.NewSource(7)))

	b, err := NewBoard(10)
	require.NoError(t, err)
	require.NoError(t, planner.PlaceFleet(b))

	wantFleet := []int{5, 4, 3, 2, 2}
	ships := b.Ships()
	require.Len(t, ships, len(wantFleet))

	gotLengths := make([]int, 0, len(ships))
	fleetCells := 0
	for _, sh := range ships {
		gotLengths = append(gotLengths, sh.Length())
		fleetCells += sh.Length()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(gotLengths)))
	assert.Equal(t, wantFleet, gotLengths)

	// No overlaps: every fleet cell occupies its own grid cell.
	assert.Equal(t, fleetCells, occupiedCellCount(t, b))
}

func TestPlaceFleetRejectsDenseBatchBeforeMutating(t *testing.T) {
	// 12 fleet cells against a cap of 7 on a 5x5 board.
	planner := NewPlanner(
		WithRandSource(rand.NewSource(7)),
		WithFleetTable(map[int][]int{
			5:  {5, 4, 3},
			10: {5, 4, 3, 2, 2},
		}),
	)

	big, err := NewBoard(10)
	require.NoError(t, err)
	small, err := NewBoard(5)
	require.NoError(t, err)

	err = planner.PlaceFleet(big, small)
	require.Error(t, err)

	// The valid board of the batch must stay untouched too.
	assert.Empty(t, big.Ships())
	assert.Empty(t, small.Ships())
}

func TestPlaceFleetUnknownBoardSize(t *testing.T) {
	planner := NewPlanner(
		WithRandSource(rand.NewSource(7)),
		WithFleetTable(map[int][]int{5: {3, 2}}),
	)

	known, err := NewBoard(5)
	require.NoError(t, err)
	unknown, err := NewBoard(6)
	require.NoError(t, err)

	require.Error(t, planner.PlaceFleet(known, unknown))
	assert.Empty(t, known.Ships())
	assert.Empty(t, unknown.Ships())
}

func TestPlaceFleetExhaustsRetries(t *testing.T) {
	planner := NewPlanner(
		WithRandSource(rand.NewSource(7)),
		WithMaxAttempts(50),
		WithFleetTable(map[int][]int{5: {2}}),
	)

	b, err := NewBoard(5)
	require.NoError(t, err)

	// Attacked cells are no longer empty, so no placement can succeed.
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			_, err := b.ReceiveAttack(x, y)
			require.NoError(t, err)
		}
	}

	require.Error(t, planner.PlaceFleet(b))
}

package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewPlayer(t *testing.T) {
	p, err := NewPlayer("  saeid  ", 7)
	require.NoError(t, err)
	assert.Equal(t, "saeid", p.Name())
	assert.Equal(t, 7, p.Board().Size())

	_, err = NewPlayer("   ", 7)
	assert.Error(t, err)

	_, err = NewPlayer("saeid", 4)
	assert.Error(t, err)
}

func TestManualAttack(t *testing.T) {
	p, err := NewPlayer("attacker", 5)
	require.NoError(t, err)
	opponent, err := NewBoard(5)
	require.NoError(t, err)

	outcome, err := opponent.PlaceShip(1, 1, 2, DirectionEast)
	require.NoError(t, err)
	require.True(t, outcome.Placed)

	report, err := p.Attack(opponent, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, AttackReport{Result: AttackResultHit, X: 1, Y: 1}, report)

	report, err = p.Attack(opponent, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, AttackResultMiss, report.Result)

	_, err = p.Attack(opponent, 0, 0)
	assert.Error(t, err, "second attack on the same cell must fail")

	_, err = p.Attack(opponent, 5, 0)
	assert.Error(t, err, "out of bounds attack must fail")
}

// The random strategy must cover the whole grid without repeats, then the
// next call must fail with exhaustion.
func TestAutoPlayerRandomNeverRepeats(t *testing.T) {
	ap, err := NewAutoPlayer("bot", 5, StrategyRandom,
		WithAttackRandSource(rand.NewSource(7)))
	require.NoError(t, err)

	opponent, err := NewBoard(5)
	require.NoError(t, err)

	seen := make(map[Coordinates]struct{})
	for i := 0; i < 25; i++ {
		report, err := ap.Attack(opponent)
		require.NoError(t, err)

		c := NewCoordinates(report.X, report.Y)
		_, repeated := seen[c]
		require.Falsef(t, repeated, "coordinate %+v attacked twice", c)
		seen[c] = struct{}{}
	}
	assert.Equal(t, 25, ap.AttacksMade())

	_, err = ap.Attack(opponent)
	require.Error(t, err)
}

func TestAutoPlayerResetBoard(t *testing.T) {
	ap, err := NewAutoPlayer("bot", 5, StrategyRandom,
		WithAttackRandSource(rand.NewSource(7)))
	require.NoError(t, err)

	opponent, err := NewBoard(5)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := ap.Attack(opponent)
		require.NoError(t, err)
	}
	require.Equal(t, 3, ap.AttacksMade())

	require.NoError(t, ap.ResetBoard(5))
	assert.Zero(t, ap.AttacksMade())
	assert.Empty(t, ap.Board().Ships())
}

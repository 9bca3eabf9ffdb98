package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

func newTestConfig() Config {
	return Config{
		BoardSize:          6,
		HostName:           "hunter",
		ChallengerName:     "gambler",
		HostStrategy:       mb.StrategyHuntTarget,
		ChallengerStrategy: mb.StrategyRandom,
		Planner:            mb.NewPlanner(mb.WithRandSource(rand.NewSource(7))),
	}
}

func TestManagerLifecycle(t *testing.T) {
	manager := NewManager()

	m, err := manager.CreateMatch(newTestConfig())
	require.NoError(t, err)
	require.NotEmpty(t, m.Uuid())

	found, err := manager.GetMatch(m.Uuid())
	require.NoError(t, err)
	assert.Same(t, m, found)

	_, err = manager.GetMatch("nope")
	assert.Error(t, err)

	manager.TerminateMatch(m.Uuid())
	_, err = manager.GetMatch(m.Uuid())
	assert.Error(t, err)
}

func TestManagerDefaultsPlayerNames(t *testing.T) {
	cfg := newTestConfig()
	cfg.HostName = ""
	cfg.ChallengerName = ""

	m, err := NewManager().CreateMatch(cfg)
	require.NoError(t, err)

	players := m.Players()
	require.Len(t, players, 2)
	assert.Equal(t, "host", players[0].Name())
	assert.Equal(t, "challenger", players[1].Name())
}

func TestMatchRunProducesWinner(t *testing.T) {
	m, err := NewManager().CreateMatch(newTestConfig())
	require.NoError(t, err)

	summary, err := m.Run()
	require.NoError(t, err)

	assert.True(t, m.IsFinished())
	assert.Contains(t, []string{"hunter", "gambler"}, summary.Winner)
	assert.Equal(t, m.Uuid(), summary.MatchUuid)

	// One attack per turn, split across both contestants.
	assert.Equal(t, summary.Turns, summary.Shots["hunter"]+summary.Shots["gambler"])
	assert.Positive(t, summary.Shots[summary.Winner])
}

func TestMatchRematch(t *testing.T) {
	m, err := NewManager().CreateMatch(newTestConfig())
	require.NoError(t, err)

	first, err := m.Run()
	require.NoError(t, err)

	require.NoError(t, m.Reset())
	assert.False(t, m.IsFinished())
	for _, p := range m.Players() {
		assert.Zero(t, p.AttacksMade())
		assert.Empty(t, p.Board().Ships())
	}

	second, err := m.Run()
	require.NoError(t, err)
	assert.Positive(t, second.Turns)
	assert.Equal(t, first.MatchUuid, second.MatchUuid)
}

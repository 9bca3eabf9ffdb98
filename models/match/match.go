package match

import (
	"github.com/rs/zerolog"

	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

// Match pairs two automated contestants over the same board size and plays
// them against each other. It is orchestration glue only; every rule lives
// in the battleship package.
type Match struct {
	uuid       string
	boardSize  int
	host       *mb.AutoPlayer
	challenger *mb.AutoPlayer
	planner    *mb.Planner
	logger     zerolog.Logger
	finished   bool
}

type Summary struct {
	MatchUuid string         `json:"matchUuid"`
	Winner    string         `json:"winner"`
	Turns     int            `json:"turns"`
	Shots     map[string]int `json:"shots"`
}

func newMatch(matchUuid string, boardSize int, host, challenger *mb.AutoPlayer, planner *mb.Planner, logger zerolog.Logger) *Match {
	return &Match{
		uuid:       matchUuid,
		boardSize:  boardSize,
		host:       host,
		challenger: challenger,
		planner:    planner,
		logger:     logger.With().Str("match", matchUuid).Logger(),
	}
}

func (m *Match) Uuid() string {
	return m.uuid
}

func (m *Match) Players() []*mb.AutoPlayer {
	return []*mb.AutoPlayer{m.host, m.challenger}
}

func (m *Match) IsFinished() bool {
	return m.finished
}

// Run places both fleets and alternates attacks, host first, until one
// attack reports sunk-all. The loop is bounded: attack memory grows by one
// position per turn and is capped at the grid capacity.
func (m *Match) Run() (Summary, error) {
	if err := m.planner.PlaceFleet(m.host.Board(), m.challenger.Board()); err != nil {
		return Summary{}, err
	}

	attacker, defender := m.host, m.challenger
	turns := 0
	for {
		turns++
		report, err := attacker.Attack(defender.Board())
		if err != nil {
			return Summary{}, err
		}

		m.logger.Debug().
			Str("attacker", attacker.Name()).
			Int("x", report.X).
			Int("y", report.Y).
			Str("result", report.Result.String()).
			Msg("turn resolved")

		if report.Result == mb.AttackResultSunkAll {
			m.finished = true
			break
		}
		attacker, defender = defender, attacker
	}

	summary := Summary{
		MatchUuid: m.uuid,
		Winner:    attacker.Name(),
		Turns:     turns,
		Shots: map[string]int{
			m.host.Name():       m.host.AttacksMade(),
			m.challenger.Name(): m.challenger.AttacksMade(),
		},
	}
	m.logger.Info().
		Str("winner", summary.Winner).
		Int("turns", summary.Turns).
		Msg("match over")
	return summary, nil
}

// Reset prepares the match for a rematch: fresh boards for both
// contestants, cleared attack memories.
func (m *Match) Reset() error {
	if err := m.host.ResetBoard(m.boardSize); err != nil {
		return err
	}
	if err := m.challenger.ResetBoard(m.boardSize); err != nil {
		return err
	}
	m.finished = false
	return nil
}

package battleship

import (
	"strings"
	"time"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"

	"golang.org/x/exp/rand"
)

// AttackReport pairs an attack result with the position it resolved at.
type AttackReport struct {
	Result AttackResult `json:"result"`
	X      int          `json:"x"`
	Y      int          `json:"y"`
}

// Player is the manual contestant. It owns its fleet board and attacks with
// coordinates supplied by the caller.
type Player struct {
	name  string
	board *Board
}

func NewPlayer(name string, boardSize int) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, cerr.ErrEmptyPlayerName()
	}

	board, err := NewBoard(boardSize)
	if err != nil {
		return nil, err
	}
	return &Player{name: name, board: board}, nil
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Board() *Board {
	return p.board
}

// ResetBoard discards the fleet board and installs a fresh empty one,
// used for rematches.
func (p *Player) ResetBoard(boardSize int) error {
	board, err := NewBoard(boardSize)
	if err != nil {
		return err
	}
	p.board = board
	return nil
}

func (p *Player) Attack(opponent *Board, x, y int) (AttackReport, error) {
	result, err := opponent.ReceiveAttack(x, y)
	if err != nil {
		return AttackReport{}, err
	}
	return AttackReport{Result: result, X: x, Y: y}, nil
}

// AutoPlayer is the automated contestant. It generates its own attack
// coordinates and remembers every position it has fired upon.
type AutoPlayer struct {
	Player
	strategy Strategy
	memory   map[Coordinates]struct{}
	rng      *rand.Rand
}

type AutoPlayerOption func(*AutoPlayer)

func WithAttackRandSource(src rand.Source) AutoPlayerOption {
	return func(ap *AutoPlayer) {
		ap.rng = rand.New(src)
	}
}

func NewAutoPlayer(name string, boardSize int, strategy Strategy, optFuncs ...AutoPlayerOption) (*AutoPlayer, error) {
	player, err := NewPlayer(name, boardSize)
	if err != nil {
		return nil, err
	}

	ap := &AutoPlayer{
		Player:   *player,
		strategy: strategy,
		memory:   make(map[Coordinates]struct{}),
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, opt := range optFuncs {
		opt(ap)
	}
	return ap, nil
}

func (ap *AutoPlayer) Strategy() Strategy {
	return ap.strategy
}

// AttacksMade returns the size of the attack memory.
func (ap *AutoPlayer) AttacksMade() int {
	return len(ap.memory)
}

func (ap *AutoPlayer) ResetBoard(boardSize int) error {
	if err := ap.Player.ResetBoard(boardSize); err != nil {
		return err
	}
	ap.memory = make(map[Coordinates]struct{})
	return nil
}

// Attack generates one coordinate via the active strategy, records it and
// resolves it against the opponent board. It never regenerates a position
// already in memory and fails once memory covers the whole grid.
func (ap *AutoPlayer) Attack(opponent *Board) (AttackReport, error) {
	capacity := opponent.Size() * opponent.Size()
	if len(ap.memory) >= capacity {
		return AttackReport{}, cerr.ErrAttackOptionsExhausted(capacity)
	}

	var c Coordinates
	switch ap.strategy {
	case StrategyHuntTarget:
		c = huntTargetCoordinates(opponent, ap.memory, ap.rng)
	default:
		c = randomCoordinates(opponent, ap.memory, ap.rng)
	}
	ap.memory[c] = struct{}{}

	result, err := opponent.ReceiveAttack(c.X, c.Y)
	if err != nil {
		return AttackReport{}, err
	}
	return AttackReport{Result: result, X: c.X, Y: c.Y}, nil
}

package match

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

const (
	defaultHostName       = "host"
	defaultChallengerName = "challenger"
)

type Config struct {
	BoardSize          int
	HostName           string
	ChallengerName     string
	HostStrategy       mb.Strategy
	ChallengerStrategy mb.Strategy

	// Optional. A fresh Planner with defaults is used when nil.
	Planner *mb.Planner

	// Optional. Match events are discarded when nil.
	Logger *zerolog.Logger
}

type Manager struct {
	matches map[string]*Match
	mu      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		matches: make(map[string]*Match, 10),
	}
}

func (mm *Manager) CreateMatch(cfg Config) (*Match, error) {
	if cfg.HostName == "" {
		cfg.HostName = defaultHostName
	}
	if cfg.ChallengerName == "" {
		cfg.ChallengerName = defaultChallengerName
	}
	if cfg.Planner == nil {
		cfg.Planner = mb.NewPlanner()
	}

	host, err := mb.NewAutoPlayer(cfg.HostName, cfg.BoardSize, cfg.HostStrategy)
	if err != nil {
		return nil, err
	}
	challenger, err := mb.NewAutoPlayer(cfg.ChallengerName, cfg.BoardSize, cfg.ChallengerStrategy)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	matchUuid := uuid.NewString()[:6]
	m := newMatch(matchUuid, cfg.BoardSize, host, challenger, cfg.Planner, logger)

	mm.mu.Lock()
	mm.matches[matchUuid] = m
	mm.mu.Unlock()

	return m, nil
}

func (mm *Manager) GetMatch(matchUuid string) (*Match, error) {
	mm.mu.RLock()
	m, prs := mm.matches[matchUuid]
	mm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrMatchNotExists(matchUuid)
	}
	return m, nil
}

func (mm *Manager) TerminateMatch(matchUuid string) {
	mm.mu.Lock()
	delete(mm.matches, matchUuid)
	mm.mu.Unlock()
}

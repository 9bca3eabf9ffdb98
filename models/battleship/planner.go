package battleship

import (
	"time"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"

	"golang.org/x/exp/rand"
)

const (
	// Maximum fraction of board cells a fleet may occupy. Above this the
	// rejection-sampling placement degrades badly, so the whole batch is
	// refused before any ship is placed.
	maxFleetDensity = 0.3

	defaultMaxPlacementAttempts = 1000
)

// DefaultFleetTable maps board size to the ship lengths of its fleet.
// Every entry respects maxFleetDensity. The table is a tuning choice,
// override it with WithFleetTable.
func DefaultFleetTable() map[int][]int {
	return map[int][]int{
		5:  {3, 2},
		6:  {3, 2, 2},
		7:  {4, 3, 2},
		8:  {4, 3, 3, 2},
		9:  {5, 4, 3, 2},
		10: {5, 4, 3, 2, 2},
	}
}

type Planner struct {
	fleets      map[int][]int
	maxAttempts int
	rng         *rand.Rand
}

type PlannerOption func(*Planner)

func NewPlanner(optFuncs ...PlannerOption) *Planner {
	p := &Planner{
		fleets:      DefaultFleetTable(),
		maxAttempts: defaultMaxPlacementAttempts,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, opt := range optFuncs {
		opt(p)
	}
	return p
}

func WithFleetTable(fleets map[int][]int) PlannerOption {
	return func(p *Planner) {
		p.fleets = fleets
	}
}

func WithMaxAttempts(maxAttempts int) PlannerOption {
	return func(p *Planner) {
		p.maxAttempts = maxAttempts
	}
}

func WithRandSource(src rand.Source) PlannerOption {
	return func(p *Planner) {
		p.rng = rand.New(src)
	}
}

func (p *Planner) FleetFor(size int) ([]int, error) {
	fleet, prs := p.fleets[size]
	if !prs {
		return nil, cerr.ErrNoFleetForSize(size)
	}
	return fleet, nil
}

// PlaceFleet populates every board in the batch with the fleet configured
// for its size. The whole batch is validated against maxFleetDensity first;
// if any board fails, no board is mutated.
func (p *Planner) PlaceFleet(boards ...*Board) error {
	for _, b := range boards {
		fleet, err := p.FleetFor(b.Size())
		if err != nil {
			return err
		}

		fleetCells := 0
		for _, length := range fleet {
			fleetCells += length
		}
		totalCells := b.Size() * b.Size()
		capCells := int(maxFleetDensity * float64(totalCells))
		if fleetCells > capCells {
			return cerr.ErrFleetTooDense(b.Size(), fleetCells, capCells)
		}
	}

	for _, b := range boards {
		fleet, _ := p.FleetFor(b.Size())
		for _, length := range fleet {
			if err := p.placeOne(b, length); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Planner) placeOne(b *Board, length int) error {
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		x := p.rng.Intn(b.Size())
		y := p.rng.Intn(b.Size())
		dir := Direction(p.rng.Intn(4))

		outcome, err := b.PlaceShip(x, y, length, dir)
		if err != nil {
			return err
		}
		if outcome.Placed {
			return nil
		}
	}
	return cerr.ErrPlacementExhausted(length, p.maxAttempts)
}

package battleship

import (
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

const (
	ShipMinLength = 2
	ShipMaxLength = 5
)

type Ship struct {
	length int
	hits   int
}

func NewShip(length int) (*Ship, error) {
	if length < ShipMinLength || length > ShipMaxLength {
		return nil, cerr.ErrInvalidShipLength(length)
	}
	return &Ship{length: length}, nil
}

// GotHit records one hit and returns the new hit count.
// Hits saturate at the ship length; hitting a sunken ship is a no-op.
func (sh *Ship) GotHit() int {
	if sh.hits < sh.length {
		sh.hits++
	}
	return sh.hits
}

func (sh *Ship) IsSunk() bool {
	return sh.hits >= sh.length
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Hits() int {
	return sh.hits
}

package error

import "fmt"

func ErrInvalidShipLength(length int) error {
	return fmt.Errorf("ship length must be between 2 and 5, got: %d", length)
}

func ErrInvalidBoardSize(size int) error {
	return fmt.Errorf("board size must be between 5 and 10, got: %d", size)
}

func ErrInvalidDirection(token string) error {
	return fmt.Errorf("direction must be one of N, E, S, W, got: %s", token)
}

func ErrInvalidStrategy(token string) error {
	return fmt.Errorf("unknown attack strategy: %s", token)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("incoming x or y is out of game grid bound\tx: %d\ty: %d", x, y)
}

func ErrPositionAlreadyAttacked(x, y int) error {
	return fmt.Errorf("this position was already attacked in previous rounds\tx: %d\ty: %d", x, y)
}

func ErrEmptyPlayerName() error {
	return fmt.Errorf("player name must not be empty")
}

func ErrAttackOptionsExhausted(capacity int) error {
	return fmt.Errorf("every cell of the opponent grid has been attacked, capacity: %d", capacity)
}

func ErrNoFleetForSize(size int) error {
	return fmt.Errorf("no fleet composition configured for board size: %d", size)
}

func ErrFleetTooDense(size, fleetCells, capCells int) error {
	return fmt.Errorf("fleet too dense for board\tsize: %d\tfleet cells: %d\tallowed: %d", size, fleetCells, capCells)
}

func ErrPlacementExhausted(length, attempts int) error {
	return fmt.Errorf("could not place ship of length %d after %d attempts", length, attempts)
}

func ErrMatchNotExists(matchUuid string) error {
	return fmt.Errorf("match with this uuid does not exist, uuid: %s", matchUuid)
}

func ErrMissingAttackCoordinates() error {
	return fmt.Errorf("both x and y must be provided for a manual attack")
}

func ErrValueNotInt(value interface{}) error {
	return fmt.Errorf("the value is not of type int:\t%v", value)
}

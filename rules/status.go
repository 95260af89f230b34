package rules

// GameStatus is the lifecycle state of a game session.
type GameStatus string

const (
	// GameStatusRunning represents a game that still accepts ticks
	GameStatusRunning GameStatus = "running"
	// GameStatusDead represents a game that ended because the snake died
	GameStatusDead GameStatus = "dead"
	// GameStatusWon represents a game where the snake filled the board
	GameStatusWon GameStatus = "won"
)

// Done reports whether the status is terminal.
func (s GameStatus) Done() bool {
	return s != GameStatusRunning
}

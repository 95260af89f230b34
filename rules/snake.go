package rules

import "github.com/gridsnake/engine/grid"

// Food is the part of the food spawner the snake needs while moving: where
// the food is, and a way to move it once eaten.
type Food interface {
	Position() (grid.Point, bool)
	Regenerate(excluding grid.Set) error
}

// Event describes what a single Advance did.
type Event int

// Advance outcomes.
const (
	// EventNone is returned when the snake is already dead.
	EventNone Event = iota
	// EventMoved is a plain step: head advanced, tail dropped.
	EventMoved
	// EventAte means the snake grew by one and the food was moved.
	EventAte
	// EventDied means the head ran into the body; nothing moved.
	EventDied
	// EventBoardFull means the snake grew but no free cell is left for food.
	EventBoardFull
)

func (e Event) String() string {
	switch e {
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventDied:
		return "died"
	case EventBoardFull:
		return "board-full"
	}
	return "none"
}

// Segment is one cell of the snake. From and To record the direction the
// snake entered and left the cell; they only matter to renderers.
type Segment struct {
	Point grid.Point     `json:"point"`
	From  grid.Direction `json:"from"`
	To    grid.Direction `json:"to"`
	Head  bool           `json:"head,omitempty"`
}

// Snake is the movement and collision state machine. Segments are stored
// tail first, head last.
type Snake struct {
	board    grid.Board
	segments []Segment
	pending  grid.Direction
	dead     bool
}

// NewSnake returns a snake of length 1 at the board origin heading right.
func NewSnake(board grid.Board) *Snake {
	return &Snake{
		board: board,
		segments: []Segment{
			{Point: grid.Point{X: 0, Y: 0}, From: grid.Right, To: grid.Right},
		},
		pending: grid.Right,
	}
}

// Turn buffers the direction applied on the next Advance. Turning back onto
// the pending direction's opposite, turning while dead, and unknown
// directions are ignored.
func (s *Snake) Turn(d grid.Direction) {
	if s.dead || !d.Valid() || d.IsOpposite(s.pending) {
		return
	}
	s.pending = d
}

// Advance moves the snake one cell in the pending direction. The head is
// checked against every segment, the tail included, before the tail is
// dropped.
func (s *Snake) Advance(food Food) Event {
	if s.dead {
		return EventNone
	}

	head := s.Head()
	next := s.board.Step(head.Point, s.pending)
	for _, seg := range s.segments {
		if seg.Point.Equals(next) {
			s.dead = true
			return EventDied
		}
	}

	ate := false
	if p, ok := food.Position(); ok && p.Equals(next) {
		ate = true
	}

	s.segments[len(s.segments)-1].To = s.pending
	if !ate {
		s.segments = append(s.segments[:0], s.segments[1:]...)
	}
	s.segments = append(s.segments, Segment{Point: next, From: s.pending, To: s.pending})

	if !ate {
		return EventMoved
	}
	if err := food.Regenerate(s.Occupied()); err == ErrBoardFull {
		return EventBoardFull
	}
	return EventAte
}

// Head returns the most recently added segment.
func (s *Snake) Head() Segment {
	return s.segments[len(s.segments)-1]
}

// Segments returns a copy of the body, tail first, with Head set on the last
// element.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	out[len(out)-1].Head = true
	return out
}

// Occupied returns the set of cells the snake covers.
func (s *Snake) Occupied() grid.Set {
	set := make(grid.Set, len(s.segments))
	for _, seg := range s.segments {
		set.Add(seg.Point)
	}
	return set
}

// Len is the number of segments.
func (s *Snake) Len() int { return len(s.segments) }

// Dead reports whether the snake has collided with itself.
func (s *Snake) Dead() bool { return s.dead }

// Direction is the direction the next Advance will move in.
func (s *Snake) Direction() grid.Direction { return s.pending }

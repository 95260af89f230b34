package rules

const (
	// DeathCauseSnakeSelfCollision is the death reason when the head runs into the body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
)

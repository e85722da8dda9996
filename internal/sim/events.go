package sim

// EventKind enumerates the discrete outcomes a tick can report upward.
// The simulation returns events from Step rather than publishing to a
// bus, so the core holds no global state and tests read outcomes
// directly.
type EventKind int

const (
	// EventDeath reports a lethal collision. Score carries the final score.
	EventDeath EventKind = iota
	// EventGraze reports a near miss. Points carries the awarded bonus.
	EventGraze
	// EventPowerUp reports a collected power-up. PowerUp carries its kind.
	EventPowerUp
	// EventShieldBroken reports a shield absorbing a lethal collision.
	EventShieldBroken
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventDeath:
		return "death"
	case EventGraze:
		return "graze"
	case EventPowerUp:
		return "powerUp"
	case EventShieldBroken:
		return "shieldBroken"
	default:
		return "unknown"
	}
}

// Event is one discrete outcome of a simulation tick.
type Event struct {
	Kind       EventKind
	ObstacleID int         // Obstacle involved (death, graze, shieldBroken)
	Points     int         // Graze bonus points
	PowerUp    PowerUpKind // Collected power-up kind
	Score      int         // Final score (death only)
}

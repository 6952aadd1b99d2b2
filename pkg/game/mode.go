package game

import "github.com/sauerbraten/arbiter/pkg/roster"

// Mode is the contract every concrete game mode implements. The controller
// calls the hooks; a mode reaches back into the match through the
// *Controller it was constructed with.
type Mode interface {
	// Reset clears mode state when a match is torn down.
	Reset()
	// Initialize prepares mode state (scores, counters) when a match starts.
	Initialize()
	UpdateScoreboard()

	ShortName() string
	FullName() string
	OffenseDescription() string
	DefenseDescription() string
	// Article is the grammatical article used in announcements, e.g. "a" or "an".
	Article() string

	// OnKill is called for every death while the match is live. killer is nil
	// if the victim was not killed by another player.
	OnKill(victim, killer *roster.Player)
	OnLeave(*roster.Player)
	OnJoin(*roster.Player)

	// OnForceEnd ends the match regardless of its objective and reports
	// whether that went cleanly. It must be safe to call more than once.
	OnForceEnd() bool

	// Tick is called once per second while the match is live.
	Tick()
}

// AttributeRequirer is implemented by modes that read mode-specific arena
// attributes. Activation fails if the arena lacks any of them.
type AttributeRequirer interface {
	RequiredAttributes() []string
}

package arena

import "github.com/sauerbraten/arbiter/pkg/roster"

// Template is implemented by every concrete arena. Load calls
// ReadyAttributes and then ReadySpawns exactly once each.
type Template interface {
	// ReadyAttributes sets the name, creators, attributes, disabled drops
	// and registers the teams.
	ReadyAttributes(b *Builder)

	// ReadySpawns adds the team spawn points and the spectator spawn.
	// Attributes and teams set up before can be read from b.
	ReadySpawns(b *Builder)

	// ApplyInventory gives p the arena's kit. The inventory has already
	// been cleared when this is called.
	ApplyInventory(p *roster.Player)
}

// PostStarter is implemented by arenas that need to do something once a
// match on them has started, after the mode was initialized.
type PostStarter interface {
	PostStart(d *Definition)
}

// Equipment clears and refreshes player inventories.
type Equipment interface {
	Clear(p *roster.Player)
	Update(p *roster.Player)
}

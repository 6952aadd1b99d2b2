package game

// tick runs once per second while the match is live.
func (c *Controller) tick() {
	if !c.active || c.state != Active {
		return
	}

	c.elapsed++
	duration := c.arena.MatchDuration()

	if msg, ok := countdown(duration - c.elapsed); ok {
		c.server.Broadcast(msg)
	}

	c.mode.Tick()
	if c.state != Active {
		// the host tore the match down from inside the tick
		return
	}

	if c.elapsed == duration {
		c.mode.OnForceEnd()
	}
}

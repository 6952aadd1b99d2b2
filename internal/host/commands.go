package host

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sauerbraten/arbiter/pkg/arena"
	"github.com/sauerbraten/arbiter/pkg/definitions/gamemode"
	"github.com/sauerbraten/arbiter/pkg/definitions/item"
	"github.com/sauerbraten/arbiter/pkg/event"
	"github.com/sauerbraten/arbiter/pkg/geom"
	"github.com/sauerbraten/arbiter/pkg/maprot"
)

func (h *Host) reply(format string, args ...interface{}) {
	fmt.Fprintf(h.out, format+"\n", args...)
}

func (h *Host) fail(format string, args ...interface{}) {
	h.reply("error: "+format, args...)
}

// HandleCommand executes one line of operator input.
func (h *Host) HandleCommand(msg string) {
	parts := strings.Fields(msg)
	if len(parts) == 0 {
		return
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "help", "commands":
		h.reply("available commands: " + strings.Join([]string{
			"connect <name>", "disconnect <name>", "join <name>", "leave <name>",
			"kill <victim> [killer]", "break|place <name> <item>", "explode", "fire",
			"end", "pause", "resume", "time <seconds>", "queue <mode> <arena>...",
			"next [<mode> [<arena>]]", "arenas", "status", "history [n]", "history wins <name>",
		}, ", "))

	case "connect":
		connect(h, args)

	case "disconnect", "kick":
		withPlayer(h, args, func(name string) {
			p, _ := h.Player(name)
			h.Disconnect(p)
			h.reply("%s disconnected", p.Name)
		})

	case "join", "play":
		withPlayer(h, args, func(name string) {
			p, _ := h.Player(name)
			h.SetJoined(p, true)
		})

	case "leave", "spec", "spectate":
		withPlayer(h, args, func(name string) {
			p, _ := h.Player(name)
			h.SetJoined(p, false)
		})

	case "kill":
		kill(h, args)

	case "break", "place":
		build(h, cmd, args)

	case "explode":
		explode(h)

	case "fire":
		fire(h)

	case "end", "forceend":
		if h.ctrl == nil {
			h.fail("no match running")
			return
		}
		// during the intermission this reaches a mode that already ended
		if !h.ctrl.Mode().OnForceEnd() {
			h.fail("the match is already over")
		}

	case "pause":
		h.Pause()

	case "resume", "unpause":
		h.Resume()

	case "settime", "settimeleft", "timeleft", "time":
		setTimeLeft(h, args)

	case "queue", "queued", "queuearena":
		queueArena(h, args)

	case "next", "arena", "setarena":
		nextMatch(h, args)

	case "arenas":
		listArenas(h)

	case "status":
		status(h)

	case "history":
		showHistory(h, args)

	default:
		h.fail("unknown command '%s'", cmd)
	}
}

func withPlayer(h *Host, args []string, do func(name string)) {
	if len(args) < 1 {
		h.fail("player name required")
		return
	}
	if _, ok := h.Player(args[0]); !ok {
		h.fail("no player named %s", args[0])
		return
	}
	do(args[0])
}

func connect(h *Host, args []string) {
	for _, name := range args {
		p, err := h.Connect(name)
		if err != nil {
			h.fail("%v", err)
			continue
		}
		h.reply("%s connected (%s)", p.Name, p.ID)
	}
}

// Pause stops the match clock, or the countdown to the next match during
// an intermission.
func (h *Host) Pause() {
	switch {
	case h.intermission != nil:
		if !h.intermission.Pause() {
			return
		}
	case h.ctrl != nil && h.ctrl.IsActive() && !h.ctrl.Paused():
		h.ctrl.Pause()
	default:
		return
	}
	h.Broadcast("The game is paused.")
}

func (h *Host) Resume() {
	switch {
	case h.intermission != nil:
		if !h.intermission.Start() {
			return
		}
	case h.ctrl != nil && h.ctrl.Paused():
		h.ctrl.Resume()
	default:
		return
	}
	h.Broadcast("The game is resumed.")
}

func setTimeLeft(h *Host, args []string) {
	if h.ctrl == nil || !h.ctrl.IsActive() {
		h.fail("no match running")
		return
	}
	if len(args) < 1 {
		h.reply("%d seconds left", h.ctrl.SecondsLeft())
		return
	}
	secs, err := strconv.Atoi(args[0])
	duration := h.arena.MatchDuration()
	if err != nil || secs < 1 || secs > duration {
		h.fail("time left must be between 1 and %d seconds", duration)
		return
	}
	h.ctrl.SetElapsedSeconds(duration - secs)
	h.Broadcast(fmt.Sprintf("The time left was set to %d seconds.", secs))
}

func queueArena(h *Host, args []string) {
	if len(args) >= 2 {
		mode, ok := gamemode.Parse(args[0])
		if !ok {
			h.fail("unknown mode '%s'", args[0])
			return
		}
		for _, a := range args[1:] {
			if err := h.rot.Queue(maprot.Entry{Mode: mode, Arena: a}); err != nil {
				h.fail("%v", err)
			}
		}
	}

	queued := h.rot.Queued()
	switch len(queued) {
	case 0:
		h.reply("no arenas queued")
	default:
		entries := make([]string, len(queued))
		for i, e := range queued {
			entries[i] = e.String()
		}
		h.reply("queued: " + strings.Join(entries, ", "))
	}
}

// nextMatch starts a match right away: the given one, or the next from the
// rotation.
func nextMatch(h *Host, args []string) {
	if len(args) == 0 {
		if err := h.cycle(); err != nil {
			h.fail("%v", err)
		}
		return
	}

	mode, ok := gamemode.Parse(args[0])
	if !ok {
		h.fail("unknown mode '%s'", args[0])
		return
	}
	e := maprot.Entry{Mode: mode}
	if len(args) >= 2 {
		e.Arena = args[1]
	} else {
		next, err := h.rot.Next(maprot.Entry{Mode: mode})
		if err != nil {
			h.fail("%v", err)
			return
		}
		e = next
	}
	if err := h.StartMatch(e); err != nil {
		h.fail("%v", err)
		return
	}
	h.SetManually = true
}

func listArenas(h *Host) {
	names := make([]string, 0, len(h.arenas))
	for name := range h.arenas {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d := h.arenas[name]
		var pools []string
		for _, mode := range h.rot.Modes() {
			if h.rot.InPool(mode, name) {
				pools = append(pools, mode.String())
			}
		}
		h.reply("%s: %d teams, %ds, rotation: [%s]", name, len(d.Teams()), d.MatchDuration(), strings.Join(pools, " "))
	}
}

func status(h *Host) {
	h.reply("up since %s, %d matches played", h.UpSince.Format(time.RFC3339), h.Matches)
	if h.ctrl == nil {
		h.reply("no match running")
		return
	}

	how := "from rotation"
	if h.SetManually {
		how = "set by operator"
	}
	state := "running"
	switch {
	case h.intermission != nil:
		state = "intermission"
	case h.ctrl.Paused():
		state = "paused"
	}
	h.reply("match %s: %s on %s (%s), %s, %ds elapsed, %ds left",
		h.ctrl.MatchID(), h.ctrl.Mode().FullName(), h.arena.Name(), how, state,
		h.ctrl.ElapsedSeconds(), h.ctrl.SecondsLeft())

	sb := h.ctrl.Scoreboard()
	if sb == nil {
		return
	}
	for _, g := range sb.Groups() {
		names := make([]string, 0, g.Size())
		for _, p := range g.Members() {
			names = append(names, p.Name)
		}
		h.reply("  %s (%s): %d [%s]", g.Name, g.Prefix, g.Size(), strings.Join(names, " "))
	}
	for _, l := range sb.Lines() {
		h.reply("  %s: %d", l.Label, l.Value)
	}
}

func showHistory(h *Host, args []string) {
	if h.history == nil {
		h.fail("match history is disabled")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if len(args) >= 1 && strings.EqualFold(args[0], "wins") {
		if len(args) < 2 {
			h.fail("usage: history wins <name>")
			return
		}
		wins, err := h.history.Wins(ctx, args[1])
		if err != nil {
			h.fail("%v", err)
			return
		}
		h.reply("wins for %s: %d", args[1], wins)
		return
	}

	n := 5
	if len(args) >= 1 {
		if v, err := strconv.Atoi(args[0]); err == nil && v > 0 {
			n = v
		}
	}
	matches, err := h.history.Recent(ctx, n)
	if err != nil {
		h.fail("%v", err)
		return
	}
	if len(matches) == 0 {
		h.reply("no matches recorded")
	}
	for _, m := range matches {
		winner := m.Winner
		if winner == "" {
			winner = "draw"
		}
		h.reply("%s %s on %s: %s (%ds, %d players)", m.EndedAt.Local().Format("2006-01-02 15:04"), m.Mode, m.Arena, winner, m.ElapsedSeconds, m.Players)
	}
}

// The commands below feed world events through the bus, as a game server
// would, and report what the arena's rules left of them.

func kill(h *Host, args []string) {
	if len(args) < 1 {
		h.fail("victim required")
		return
	}
	victim, ok := h.Player(args[0])
	if !ok {
		h.fail("no player named %s", args[0])
		return
	}
	e := &event.Death{Victim: victim, Drops: h.Inventory(victim)}
	if len(args) >= 2 {
		killer, ok := h.Player(args[1])
		if !ok {
			h.fail("no player named %s", args[1])
			return
		}
		e.Killer = killer
	}
	delete(h.inventories, victim)

	h.bus.Dispatch(e)

	var drops []string
	for _, s := range e.Drops {
		if s.Kind != item.Air {
			drops = append(drops, fmt.Sprintf("%dx %s", s.Amount, s.Kind))
		}
	}
	if len(drops) > 0 {
		h.reply("%s dropped %s", victim.Name, strings.Join(drops, ", "))
	}
}

func build(h *Host, cmd string, args []string) {
	if len(args) < 2 {
		h.fail("usage: %s <name> <item>", cmd)
		return
	}
	p, ok := h.Player(args[0])
	if !ok {
		h.fail("no player named %s", args[0])
		return
	}
	kind, ok := item.Parse(args[1])
	if !ok {
		h.fail("unknown item '%s'", args[1])
		return
	}
	block := h.positions[p].Vector().Block()

	var cancelled bool
	if cmd == "break" {
		e := &event.BlockBreak{Player: p, Block: block, Kind: kind}
		h.bus.Dispatch(e)
		cancelled = e.Cancelled()
	} else {
		e := &event.BlockPlace{Player: p, Block: block, Kind: kind}
		h.bus.Dispatch(e)
		cancelled = e.Cancelled()
	}
	if cancelled {
		h.reply("%s: not allowed here", cmd)
	} else {
		h.reply("%s: ok", cmd)
	}
}

func explode(h *Host) {
	origin := geom.Vector{}
	e := &event.Explosion{Origin: origin}
	for _, d := range []geom.Vector{{X: 1}, {X: -1}, {Z: 1}, {Z: -1}} {
		e.Blocks = append(e.Blocks, origin.Add(d))
	}
	h.bus.Dispatch(e)
	h.reply("explosion destroyed %d blocks", len(e.Blocks))
}

func fire(h *Host) {
	spread := &event.BlockSpread{Source: item.Fire}
	ignite := &event.BlockIgnite{Cause: event.IgniteSpread}
	burn := &event.BlockBurn{}
	h.bus.Dispatch(spread)
	h.bus.Dispatch(ignite)
	h.bus.Dispatch(burn)

	if spread.Cancelled() && ignite.Cancelled() && burn.Cancelled() {
		h.reply("fire does not spread here")
	} else {
		h.reply("fire spreads")
	}
}

// Arena returns the loaded arena called name.
func (h *Host) Arena(name string) (*arena.Definition, bool) {
	d, ok := h.arenas[name]
	return d, ok
}

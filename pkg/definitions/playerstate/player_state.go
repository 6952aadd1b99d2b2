package playerstate

type ID uint32

const (
	Playing ID = iota
	Spectator
)

func (id ID) String() string {
	switch id {
	case Playing:
		return "playing"
	case Spectator:
		return "spectator"
	default:
		return "unknown"
	}
}

package core

// Sound is an audio cue a game asks the platform to play.
type Sound int

const (
	SoundNone Sound = iota
	SoundTurn
	SoundTeleport
	SoundEat
	SoundCollision
)

func (s Sound) String() string {
	switch s {
	case SoundNone:
		return "none"
	case SoundTurn:
		return "turn"
	case SoundTeleport:
		return "teleport"
	case SoundEat:
		return "eat"
	case SoundCollision:
		return "collision"
	default:
		return "unknown"
	}
}

package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Mode selects how the driver advances generations.
type Mode uint8

const (
	// ModeRunning advances automatically whenever enough time has elapsed.
	ModeRunning Mode = iota
	// ModeStepping advances only on explicit step commands.
	ModeStepping
)

func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModeStepping:
		return "stepping"
	default:
		return "unknown"
	}
}

// Command is a discrete, argument-free request issued by the host UI.
type Command uint8

const (
	CommandNone Command = iota
	CommandStep
	CommandRun
	CommandClear
	CommandRandom
	CommandNoise
)

// Commands lists the user-facing commands in display order.
var Commands = []Command{CommandStep, CommandRun, CommandClear, CommandRandom, CommandNoise}

func (c Command) String() string {
	switch c {
	case CommandStep:
		return "step"
	case CommandRun:
		return "run"
	case CommandClear:
		return "clear"
	case CommandRandom:
		return "random"
	case CommandNoise:
		return "noise"
	default:
		return "none"
	}
}

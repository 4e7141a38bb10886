package core

// Mode selects which monthly aggregate drives color and sparkline display.
type Mode string

const (
	ModeMax Mode = "MAX"
	ModeMin Mode = "MIN"
)

var ValidModes = []Mode{ModeMax, ModeMin}

func (m Mode) Label() string {
	switch m {
	case ModeMin:
		return "Monthly Min"
	default:
		return "Monthly Max"
	}
}

func ParseMode(s string) Mode {
	for _, m := range ValidModes {
		if string(m) == s {
			return m
		}
	}
	return ModeMax
}

// NextMode returns the next mode in the cycle.
func NextMode(current Mode) Mode {
	for i, m := range ValidModes {
		if m == current {
			return ValidModes[(i+1)%len(ValidModes)]
		}
	}
	return ValidModes[0]
}

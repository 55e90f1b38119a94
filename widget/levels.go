package widget

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// Level is a QR error-correction level. Higher levels survive more damage
// (useful with a logo overlay) at the cost of data capacity.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelQuartile Level = "quartile"
	LevelHigh     Level = "high"
)

// ParseLevel converts a user-supplied string into a Level.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelLow:
		return LevelLow, nil
	case LevelMedium:
		return LevelMedium, nil
	case LevelQuartile:
		return LevelQuartile, nil
	case LevelHigh:
		return LevelHigh, nil
	default:
		return "", fmt.Errorf("unknown error-correction level %q", s)
	}
}

// RecoveryLevel maps the level onto the encoder's recovery constants.
func (l Level) RecoveryLevel() qrcode.RecoveryLevel {
	switch l {
	case LevelLow:
		return qrcode.Low
	case LevelQuartile:
		return qrcode.High // skip2 "High" is the 25% quartile tier
	case LevelHigh:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

package model

import (
	"math"
	"strings"
)

// Goal is a savings target. Updates replace the whole record.
type Goal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      *Date   `json:"deadline,omitempty"`
	Icon          string  `json:"icon"`
}

// Remaining is how much is still missing to reach the target. It is negative
// once the goal is exceeded.
func (g Goal) Remaining() float64 {
	return g.TargetAmount - g.CurrentAmount
}

// ProgressPercent returns completion as a whole percentage capped at 100.
func (g Goal) ProgressPercent() int {
	if g.TargetAmount <= 0 {
		return 100
	}
	pct := math.Round(g.CurrentAmount / g.TargetAmount * 100)
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return int(pct)
}

// Validate checks the fields a stored goal must carry.
func (g Goal) Validate() error {
	switch {
	case strings.TrimSpace(g.ID) == "":
		return ErrMissingID
	case strings.TrimSpace(g.Name) == "":
		return ErrMissingName
	case !validAmount(g.TargetAmount):
		return ErrInvalidAmount
	case g.CurrentAmount < 0 || math.IsNaN(g.CurrentAmount) || math.IsInf(g.CurrentAmount, 0):
		return ErrInvalidAmount
	}
	return nil
}

package entity

import "strings"

type Difficulty string

const (
	EasyDifficulty   Difficulty = "easy"
	MediumDifficulty Difficulty = "medium"
	HardDifficulty   Difficulty = "hard"
)

// ParseDifficulty resolves a raw selector value. Anything that is not a known tier falls back to hard.
func ParseDifficulty(raw string) Difficulty {
	switch difficulty := Difficulty(strings.ToLower(strings.TrimSpace(raw))); difficulty {
	case EasyDifficulty, MediumDifficulty, HardDifficulty:
		return difficulty
	default:
		return HardDifficulty
	}
}

// IsKnownDifficulty reports whether raw names one of the tiers.
func IsKnownDifficulty(raw string) bool {
	switch Difficulty(strings.ToLower(strings.TrimSpace(raw))) {
	case EasyDifficulty, MediumDifficulty, HardDifficulty:
		return true
	default:
		return false
	}
}

func (that Difficulty) String() string {
	return string(that)
}

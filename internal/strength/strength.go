// Package strength scores password composition for live UI feedback.
//
// The score is advisory. It uses its own character classes and does not
// have to agree with validation.ValidatePassword.
package strength

import (
	"unicode"
	"unicode/utf8"
)

type Label string

const (
	LabelEmpty  Label = "Empty"
	LabelWeak   Label = "Weak"
	LabelMedium Label = "Medium"
	LabelStrong Label = "Strong"
)

// Tier is the severity a UI should render the label with.
type Tier int

const (
	TierNeutral Tier = iota
	TierDanger
	TierWarning
	TierSuccess
)

// Color returns the RGB colour traditionally used for the tier.
func (t Tier) Color() (r, g, b uint8) {
	switch t {
	case TierDanger:
		return 255, 0, 0
	case TierWarning:
		return 255, 165, 0
	case TierSuccess:
		return 0, 255, 0
	default:
		return 136, 136, 136
	}
}

const (
	MaxScore = 100

	pointsPerChar   = 4
	uppercaseBonus  = 10
	lowercaseBonus  = 10
	digitBonus      = 10
	specialBonus    = 15
	mediumThreshold = 40
	strongThreshold = 70
)

type PasswordStrength struct {
	Score int
	Label Label
	Tier  Tier
}

// Score computes the strength of password: four points per character plus
// a bonus for each character class present, capped at MaxScore.
func Score(password string) PasswordStrength {
	if password == "" {
		return PasswordStrength{Score: 0, Label: LabelEmpty, Tier: TierNeutral}
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r):
			hasSpecial = true
		}
	}

	score := utf8.RuneCountInString(password) * pointsPerChar
	if hasUpper {
		score += uppercaseBonus
	}
	if hasLower {
		score += lowercaseBonus
	}
	if hasDigit {
		score += digitBonus
	}
	if hasSpecial {
		score += specialBonus
	}
	score = min(score, MaxScore)

	switch {
	case score < mediumThreshold:
		return PasswordStrength{Score: score, Label: LabelWeak, Tier: TierDanger}
	case score < strongThreshold:
		return PasswordStrength{Score: score, Label: LabelMedium, Tier: TierWarning}
	default:
		return PasswordStrength{Score: score, Label: LabelStrong, Tier: TierSuccess}
	}
}

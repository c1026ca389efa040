package strength

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     PasswordStrength
	}{
		{"empty", "", PasswordStrength{0, LabelEmpty, TierNeutral}},
		{"ten lowercase", "aaaaaaaaaa", PasswordStrength{50, LabelMedium, TierWarning}},
		{"all four classes", "Aa1!aaaa", PasswordStrength{77, LabelStrong, TierSuccess}},
		{"short lowercase", "abc", PasswordStrength{22, LabelWeak, TierDanger}},
		{"lowercase and digit", "aaaaaaa1", PasswordStrength{52, LabelMedium, TierWarning}},
		{"just below strong", "Ab1!a", PasswordStrength{65, LabelMedium, TierWarning}},
		{"just below medium", "aaaaaaa", PasswordStrength{38, LabelWeak, TierDanger}},
		{"exactly medium", "Aaaaa", PasswordStrength{40, LabelMedium, TierWarning}},
		{"exactly strong", strings.Repeat("a", 15), PasswordStrength{70, LabelStrong, TierSuccess}},
		{"just below strong with special", "aaaaaaaaaa!", PasswordStrength{69, LabelMedium, TierWarning}},
		{"three classes", "Aaaaaaaaaaa!", PasswordStrength{83, LabelStrong, TierSuccess}},
		{"capped", strings.Repeat("Aa1!", 10), PasswordStrength{100, LabelStrong, TierSuccess}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.password))
		})
	}
}

func TestScore_IgnoresClassOrder(t *testing.T) {
	assert.Equal(t, Score("!1aA"), Score("Aa1!"))
}

func TestScore_CaselessLetterIsNotSpecial(t *testing.T) {
	// CJK letters have no case: four points each, no class bonus.
	assert.Equal(t, 12, Score("漢字語").Score)
}

func TestTier_Color(t *testing.T) {
	r, g, b := TierWarning.Color()
	assert.Equal(t, [3]uint8{255, 165, 0}, [3]uint8{r, g, b})

	r, g, b = TierNeutral.Color()
	assert.Equal(t, [3]uint8{136, 136, 136}, [3]uint8{r, g, b})
}

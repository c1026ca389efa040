package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/strength"
)

// Strength scores a password without storing it.
func (a *App) Strength(ctx context.Context) error {
	password, err := getPassword(a.out, "Password to score: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.printStrength(string(password))
	return nil
}

func (a *App) printStrength(password string) {
	s := strength.Score(password)
	a.println(fmt.Sprintf("Strength: %s (%d/%d)", paint(a.messages.Strength(s.Label), s.Tier), s.Score, strength.MaxScore))
}

// paint renders text in the tier colour. lipgloss drops the colour when
// stdout is not a terminal.
func paint(text string, tier strength.Tier) string {
	r, g, b := tier.Color()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))).
		Render(text)
}

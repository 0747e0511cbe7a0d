package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"joytrade/internal/client/models"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	emptyStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
	ownStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
)

func (a *App) title(s string) {
	fmt.Fprintln(a.out, titleStyle.Render(s))
}

func (a *App) header(s string) {
	fmt.Fprintln(a.out, headerStyle.Render(s))
}

func (a *App) info(s string) {
	fmt.Fprintln(a.out, faintStyle.Render(s))
}

// alert prints a blocking-alert equivalent: a highlighted line the user sees
// before the next prompt.
func (a *App) alert(s string) {
	fmt.Fprintln(a.out, errorStyle.Render(s))
}

func (a *App) empty(s string) {
	fmt.Fprintln(a.out, emptyStyle.Render(s))
}

func money(v float64) string {
	return fmt.Sprintf("£%.2f", v)
}

func when(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

func productRow(p models.Product) string {
	return fmt.Sprintf("  [%d] %s — %s (%s)", p.ID, p.Name, money(p.Price), p.Category)
}

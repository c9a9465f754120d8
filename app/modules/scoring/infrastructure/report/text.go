package scoringreport

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
	"github.com/charmbracelet/lipgloss"
)

// Course palette
var (
	ColorFairway = lipgloss.Color("#3FA34D")
	ColorGreen   = lipgloss.Color("#2A7F3E")
	ColorSand    = lipgloss.Color("#E9C46A")
	ColorSlate   = lipgloss.Color("#5C6B73")
)

// Styles provides pre-configured lipgloss styles for terminal output.
var Styles = struct {
	Winner  lipgloss.Style
	Tie     lipgloss.Style
	Label   lipgloss.Style
	Player  lipgloss.Style
	Summary lipgloss.Style
}{
	Winner:  lipgloss.NewStyle().Bold(true).Foreground(ColorFairway),
	Tie:     lipgloss.NewStyle().Bold(true).Foreground(ColorSand),
	Label:   lipgloss.NewStyle().Foreground(ColorSlate),
	Player:  lipgloss.NewStyle().Bold(true).Foreground(ColorGreen),
	Summary: lipgloss.NewStyle().Italic(true),
}

// Options controls what WriteSummary prints.
type Options struct {
	Breakdown bool
	Styled    bool
}

// WriteSummary prints the winner line, the result sentence and, when asked,
// each player's breakdown.
func WriteSummary(w io.Writer, res *scoringtypes.Result, opts Options) error {
	if res == nil {
		_, err := fmt.Fprintln(w, "No winner could be determined.")
		return err
	}

	render := func(s lipgloss.Style, text string) string {
		if !opts.Styled {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	winnerStyle := Styles.Winner
	if res.IsTie() {
		winnerStyle = Styles.Tie
	}
	fmt.Fprintf(&b, "%s %s\n", render(Styles.Label, "Winner:"), render(winnerStyle, res.Winner))
	fmt.Fprintf(&b, "%s %s\n", render(Styles.Label, "Result:"), render(Styles.Summary, res.Summary))

	if opts.Breakdown {
		b.WriteString("\nPlayer Scores:\n")
		for _, p := range res.Players {
			fmt.Fprintf(&b, "  %s:\n", render(Styles.Player, p.Player.String()))
			line := func(label, value string) {
				fmt.Fprintf(&b, "    %s %s\n", render(Styles.Label, label+":"), value)
			}
			line("Handicap", strconv.Itoa(p.CourseHandicap))
			line("Gross Scores", FormatScores(p.Gross))
			line("Strokes Received", FormatScores(p.Strokes))
			line("Net Scores", FormatScores(p.Net))
			line("Total Gross", strconv.Itoa(p.TotalGross))
			line("Total Net", strconv.Itoa(p.TotalNet))
			if res.Mode == scoringtypes.ModeMatchPlay {
				line("Holes Won", strconv.Itoa(res.HolesWon[p.Player]))
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatScores renders a score list as [4, 5, 3].
func FormatScores(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

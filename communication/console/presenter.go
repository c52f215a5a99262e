package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"war/game"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Presenter writes the game to a terminal. It carries no input, so scripted
// games reuse it for their output.
type Presenter struct {
	out io.Writer

	bannerStyle  lipgloss.Style
	headerStyle  lipgloss.Style
	cellStyle    lipgloss.Style
	borderStyle  lipgloss.Style
	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	mutedStyle   lipgloss.Style
}

func NewPresenter(out io.Writer) *Presenter {
	r := lipgloss.NewRenderer(out)
	return &Presenter{
		out:          out,
		bannerStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D4FF")),
		headerStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#EEEEEE")).Padding(0, 1),
		cellStyle:    r.NewStyle().Padding(0, 1),
		borderStyle:  r.NewStyle().Foreground(lipgloss.Color("#666666")),
		successStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E22E")),
		warningStyle: r.NewStyle().Foreground(lipgloss.Color("#FD971F")),
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("#F92672")),
		mutedStyle:   r.NewStyle().Foreground(lipgloss.Color("#808080")),
	}
}

func (p *Presenter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Presenter) banner(title string) {
	rule := "=============================="
	p.printf("\n%s\n", p.bannerStyle.Render(rule+"\n"+title+"\n"+rule))
}

// Welcome opens a new game.
func (p *Presenter) Welcome() {
	p.banner("Shall we start our war?")
}

// Section titles a block of setup prompts.
func (p *Presenter) Section(title string) {
	p.printf("\n%s\n", p.bannerStyle.Render("--- "+title+" ---"))
}

// AnnounceMission tells a freshly registered player which mission they drew.
func (p *Presenter) AnnounceMission(player game.Player) {
	p.printf("Mission of %s: %s\n", player.Color, player.Mission.Description())
}

// RoundHeader opens the attack phase of a round.
func (p *Presenter) RoundHeader(round int) {
	p.printf("\n\n%s\n", p.bannerStyle.Render(fmt.Sprintf("=============== ROUND %d: ATTACK PHASE ===============", round)))
}

// Notice prints a non-fatal remark about the input just read.
func (p *Presenter) Notice(msg string) {
	p.printf("%s\n", p.warningStyle.Render(msg))
}

func (p *Presenter) RenderState(r *game.Registry) {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.borderStyle).
		Headers("#", "Territory", "Color (Owner)", "Troops").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.headerStyle
			}
			return p.cellStyle
		})
	for i, t := range r.Snapshot() {
		tbl.Row(strconv.Itoa(i+1), t.Name, t.Color, strconv.Itoa(t.Troops))
	}

	p.banner("CURRENT STATE OF THE TERRITORIES")
	p.printf("%s\n", tbl.Render())
}

func (p *Presenter) Narrate(result game.AttackResult) {
	p.Section("ATTACK SIMULATION")
	p.printf("ATTACKER: %s (%s) vs DEFENDER: %s (%s)\n",
		result.Attacker, result.AttackerColor, result.Defender, result.DefenderColor)
	p.printf("Attacker die: %d | Defender die: %d\n", result.AttackerDie, result.DefenderDie)

	if result.Captured {
		p.printf("\n%s\n", p.successStyle.Render(fmt.Sprintf("*** ATTACKER WINS! %s CONQUERED %s! ***", result.Attacker, result.Defender)))
		p.printf("%d troops transferred. New color: %s.\n", result.Transferred, result.AttackerColor)
		return
	}

	p.printf("\n%s\n", p.warningStyle.Render(fmt.Sprintf("*** DEFENDER WINS! The attack from %s failed. ***", result.Attacker)))
	if result.AttackerLost > 0 {
		p.printf("%s loses %d attacking troop.\n", result.Attacker, result.AttackerLost)
	} else {
		p.printf("%s lost no troops (minimum kept).\n", result.Attacker)
	}
}

func (p *Presenter) ReportError(err error) {
	p.printf("\n%s\n", p.errorStyle.Render("Error: "+describe(err)))
}

func describe(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidDefender):
		return "invalid defender selection. Round finished."
	case errors.Is(err, game.ErrInvalidSelection):
		return "invalid territory selection."
	case errors.Is(err, game.ErrSameColor):
		return "cannot attack a territory of your own color."
	case errors.Is(err, game.ErrInsufficientTroops):
		return "insufficient troops, the attacker needs more than one troop."
	default:
		return err.Error()
	}
}

func (p *Presenter) ReportOutcome(outcome game.Outcome) {
	switch outcome.Phase {
	case game.MissionVictoryPhase:
		p.printf("\n\n%s\n", p.successStyle.Render("!!! MISSION VICTORY !!!"))
		p.printf("THE PLAYER OF COLOR '%s' WON BY COMPLETING THE MISSION:\n-> %s\n",
			outcome.WinnerColor, outcome.Mission.Description())
	case game.ConquestVictoryPhase:
		p.printf("\n\n%s\n", p.successStyle.Render("!!! TOTAL CONQUEST VICTORY !!!"))
		p.printf("THE PLAYER OF COLOR '%s' CONQUERED EVERY TERRITORY!\n", outcome.WinnerColor)
	default:
		p.printf("\n%s\n", p.mutedStyle.Render(fmt.Sprintf("Game ended early after %d rounds.", outcome.Rounds)))
	}
}

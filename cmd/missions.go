package cmd

import (
	"fmt"
	"strconv"
	"war/game"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List the missions players can draw",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		r := lipgloss.NewRenderer(cmd.OutOrStdout())
		headerStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D4FF")).Padding(0, 1)
		cellStyle := r.NewStyle().Padding(0, 1)

		tbl := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(r.NewStyle().Foreground(lipgloss.Color("#666666"))).
			Headers("#", "Kind", "Mission").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
		for i, m := range game.Catalog() {
			tbl.Row(strconv.Itoa(i+1), m.Kind.String(), m.Description())
		}
		fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
	},
}

func init() {
	rootCmd.AddCommand(missionsCmd)
}

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quarto/internal/core"
	"github.com/vovakirdan/tui-quarto/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List computer opponents and rule levels",
	Long:  `Shows every registered computer opponent and the four rule levels.`,
	Run:   runList,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func runList(cmd *cobra.Command, args []string) {
	agents := registry.List()

	if len(agents) == 0 {
		fmt.Println("No opponents available.")
		return
	}

	fmt.Println("Opponents:")
	t := newTable("ID", "Name")
	for _, a := range agents {
		t.Row(a.ID, a.Title)
	}
	fmt.Println(t)

	fmt.Println()
	fmt.Println("Rule levels:")
	levels := newTable("Level", "Winning shapes")
	for l := core.MinLevel; l <= core.MaxLevel; l++ {
		levels.Row(fmt.Sprint(int(l)), l.Description())
	}
	fmt.Println(levels)

	fmt.Println()
	fmt.Println("Run 'quarto play --p2 <id>' to play against an opponent.")
}

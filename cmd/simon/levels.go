package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	simoncore "github.com/vovakirdan/simon-says/internal/games/simon/core"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

var (
	levelsHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	levelsCell   = lipgloss.NewStyle().Padding(0, 1)
)

func runLevels(_ *cobra.Command, _ []string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Level", "Name", "Steps").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return levelsHeader
			}
			return levelsCell
		})

	for _, info := range simoncore.Levels {
		t.Row(strconv.Itoa(int(info.Level)), info.Name, strconv.Itoa(info.Steps))
	}

	fmt.Println(t)
	fmt.Println("The sequence is drawn once per game and replayed from the start every round.")
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/styletools/style-logger/stylelog"
)

var levelStyles = map[string]lipgloss.Style{
	"OFF":   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
	"FATAL": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
	"ERROR": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	"WARN":  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	"INFO":  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	"DEBUG": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
}

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level help table",
	Long:  "Show each level setting and what it means, highest severity first.",
	Run: func(cmd *cobra.Command, args []string) {
		var sb strings.Builder
		for _, entry := range stylelog.RenderHelp().Entries {
			name := entry.Property
			if style, ok := levelStyles[name]; ok {
				name = style.Render(name)
			}
			fmt.Fprintf(&sb, "%s  %s\n", lipgloss.NewStyle().Width(7).Render(name),
				descStyle.Render(entry.Value))
		}
		fmt.Print(sb.String())
	},
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}

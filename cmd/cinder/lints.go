package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"cinder/internal/driver"
	"cinder/internal/lint"
)

var lintsCmd = &cobra.Command{
	Use:   "lints",
	Short: "List known lints and lint groups",
	Long:  `List every registered lint with its default level, plus the lint groups a configuration can address`,
	Args:  cobra.NoArgs,
	RunE:  runLints,
}

func init() {
	lintsCmd.Flags().String("config", "", "path to cinder.toml (applied before listing)")
}

var (
	lintNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	lintLevelStyle = map[lint.Level]lipgloss.Style{
		lint.LevelAllow: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		lint.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		lint.LevelDeny:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
	lintGroupStyle = lipgloss.NewStyle().Underline(true)
)

func runLints(cmd *cobra.Command, args []string) error {
	reg := lint.DefaultRegistry()
	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		cfg, err := driver.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if err := cfg.ApplyLints(reg); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	styled := colorEnabled(cmd)

	lints := reg.All()
	nameWidth := 0
	for _, l := range lints {
		if len(l.Name) > nameWidth {
			nameWidth = len(l.Name)
		}
	}

	for _, l := range lints {
		name := l.Name + strings.Repeat(" ", nameWidth-len(l.Name))
		level := l.Default.String()
		if styled {
			name = lintNameStyle.Render(name)
			level = lintLevelStyle[l.Default].Render(level)
		}
		fmt.Fprintf(out, "%s  %-5s  %s\n", name, level, l.Desc)
	}

	groups := reg.Groups()
	if len(groups) > 0 {
		fmt.Fprintln(out)
		for _, g := range groups {
			members, _ := reg.Expand(g)
			label := g
			if styled {
				label = lintGroupStyle.Render(g)
			}
			fmt.Fprintf(out, "%s: %s\n", label, strings.Join(members, ", "))
		}
	}
	return nil
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/utensils/hexalith/pkg/palette"
)

// themesCommand creates the themes listing command.
func (c *CLI) themesCommand() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List color themes",
		Long: `List the built-in color themes with a swatch of each palette.

With --pick, choose a theme interactively and print its name, for use as
hexalith generate -t "$(hexalith themes --pick)".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pick {
				name, ok, err := pickTheme(c.Config.Defaults.Theme)
				if err != nil {
					return fmt.Errorf("theme picker: %w", err)
				}
				if !ok {
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), themeTable(palette.All(), c.Config.Defaults.Theme))
			return nil
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "choose a theme interactively")
	return cmd
}

// themeTable renders themes as a table, marking the configured default.
func themeTable(themes []palette.Theme, current string) string {
	rows := make([][]string, 0, len(themes))
	for _, t := range themes {
		mark := ""
		if t.String() == current {
			mark = iconSuccess
		}
		rows = append(rows, []string{mark, t.String(), strconv.Itoa(t.Len()), swatch(t.Colors()), t.Describe()})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Theme", "Size", "Colors", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return styleIconSuccess
			case col == 1:
				return StyleHighlight
			case col == 2:
				return StyleNumber
			case col == 4:
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Iron-Ham/pitwall/internal/tui/styles"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "List and inspect color themes",
	Long: `List and inspect the dashboard color themes.

Use 'theme list' to see all available themes.
Use 'theme info' to view the palette of a specific theme.
Select a theme with 'pitwall config set tui.theme <name>'.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available themes",
	RunE:  runThemeList,
}

var themeInfoCmd = &cobra.Command{
	Use:   "info <theme-name>",
	Short: "Show information about a theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeInfo,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeInfoCmd)
	configCmd.AddCommand(themeCmd)
}

func runThemeList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	current := viper.GetString("tui.theme")

	fmt.Fprintln(out, "Available themes:")
	for _, name := range styles.BuiltinThemes() {
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %s\n", marker, name)
	}

	return nil
}

func runThemeInfo(cmd *cobra.Command, args []string) error {
	themeName := args[0]
	if !styles.IsValidTheme(themeName) {
		return fmt.Errorf("unknown theme: %s\nValid options: %s", themeName, strings.Join(styles.BuiltinThemes(), ", "))
	}

	out := cmd.OutOrStdout()
	palette := styles.GetPalette(styles.ThemeName(themeName))

	fmt.Fprintf(out, "Theme: %s\n", themeName)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Base Colors:")
	fmt.Fprintf(out, "  Primary:   %s\n", palette.Primary)
	fmt.Fprintf(out, "  Secondary: %s\n", palette.Secondary)
	fmt.Fprintf(out, "  Warning:   %s\n", palette.Warning)
	fmt.Fprintf(out, "  Error:     %s\n", palette.Error)
	fmt.Fprintf(out, "  Muted:     %s\n", palette.Muted)
	fmt.Fprintf(out, "  Text:      %s\n", palette.Text)
	fmt.Fprintf(out, "  Border:    %s\n", palette.Border)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Chart Colors:")
	fmt.Fprintf(out, "  Downforce: %s\n", ansiColorName(palette.Downforce))
	fmt.Fprintf(out, "  Drag:      %s\n", ansiColorName(palette.Drag))
	fmt.Fprintf(out, "  Axis:      %s\n", ansiColorName(palette.Axis))

	return nil
}

// ansiColorName returns the chart color's name, preferring the shortest
// when several names share a code.
func ansiColorName(c asciigraph.AnsiColor) string {
	var names []string
	for name, code := range asciigraph.ColorNames {
		if code == c {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("ansi(%d)", int(c))
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) < len(names[j])
		}
		return names[i] < names[j]
	})
	return names[0]
}

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/roboco-io/galaxymsbt/internal/config"
	"github.com/roboco-io/galaxymsbt/internal/symbols"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage symbol tables",
	Long: `Manage the symbol tables that map tag and attribute values to names.

The built-in tables can be overridden with a JSON file, by default
~/.galaxymsbt/adapter_config.json. Keys that are absent keep the
built-in values. Comments and trailing commas are allowed.

Subcommands:
  show    print the active tables
  init    write the built-in tables to the override file
  path    print the override file path`,
}

var tablesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active tables",
	RunE:  runTablesShow,
}

var tablesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in tables to the override file",
	Long: `Write the built-in tables to the override file for editing.

An existing file is kept unless --force is given.`,
	RunE: runTablesInit,
}

var tablesPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the override file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := tablesFilePath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var tablesForce bool

func init() {
	tablesInitCmd.Flags().BoolVarP(&tablesForce, "force", "f", false, "overwrite an existing file")

	tablesCmd.AddCommand(tablesShowCmd, tablesInitCmd, tablesPathCmd)
	rootCmd.AddCommand(tablesCmd)
}

// tablesFilePath is the override file location used by tables init/path.
func tablesFilePath() (string, error) {
	loader, err := newLoader()
	if err != nil {
		return "", err
	}
	if flagTables != "" {
		return flagTables, nil
	}
	return loader.TablesPath(), nil
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	indexStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runTablesShow(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Source: %s\n", firstNonEmpty(s.tablesPath, "(built-in)"))
	fmt.Fprintf(w, "Fingerprint: %s\n", s.tables.Fingerprint())
	printTables(w, s.tables)
	return nil
}

func printTables(w io.Writer, t *symbols.Tables) {
	lists := []struct {
		key   string
		names []string
	}{
		{config.KeyFontColors, t.FontColors},
		{config.KeyFontSizes, t.FontSizes},
		{config.KeyRaceTimes, t.RaceTimes},
		{config.KeyMessageSounds, t.MessageSounds},
		{config.KeyTalkTypes, t.TalkTypes},
		{config.KeyBalloonTypes, t.BalloonTypes},
		{config.KeyCameraTypes, t.CameraTypes},
	}

	for _, l := range lists {
		fmt.Fprintf(w, "\n%s\n", headingStyle.Render(l.key))
		for i, name := range l.names {
			fmt.Fprintf(w, "  %s %s\n", indexStyle.Render(fmt.Sprintf("%3d", i)), name)
		}
	}

	fmt.Fprintf(w, "\n%s\n", headingStyle.Render(config.KeyPictureIcons))
	for i, p := range t.Pictures {
		fmt.Fprintf(w, "  %s %s %s\n",
			indexStyle.Render(fmt.Sprintf("%3d", i)),
			p.Name,
			indexStyle.Render(fmt.Sprintf("(code %d)", p.Code)))
	}
}

func runTablesInit(cmd *cobra.Command, args []string) error {
	path, err := tablesFilePath()
	if err != nil {
		return err
	}

	if err := config.InitTables(path, tablesForce); err != nil {
		if errors.Is(err, config.ErrTablesExist) {
			return fmt.Errorf("%w\nuse --force to overwrite", err)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Tables written: %s\n", path)
	return nil
}

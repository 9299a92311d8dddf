package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/imgajeed76/gridsheet/internal/config"
	"github.com/imgajeed76/gridsheet/internal/logging"
	"github.com/imgajeed76/gridsheet/internal/ui/styles"
	"github.com/imgajeed76/gridsheet/internal/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

// appState is what the root pre-run hands to every command
type appState struct {
	cfg      *config.Config
	cfgPath  string
	closeLog func()
}

var app = &appState{closeLog: func() {}}

var rootCmd = &cobra.Command{
	Use:   "gridsheet [file]",
	Short: "A spreadsheet-style grid viewer for the terminal",
	Long: `gridsheet shows tabular data in a spreadsheet-style grid with a
cell cursor, mouse drag selection and keyboard navigation.

Without arguments it opens a built-in sheet of job requests. Sheet files
(.toml, .yaml) and PostgreSQL query results can be opened as well.

Logs are written to gridsheet.log next to the config file.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	Version:           Version,
	PersistentPreRunE: setup,
	RunE:              runOpen,
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer func() { app.closeLog() }()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")

		// Check if it's a structured SheetError
		var sheetErr *util.SheetError
		if errors.As(err, &sheetErr) {
			fmt.Fprintln(os.Stderr, sheetErr.Format())
		} else {
			// Simple error - still format nicely
			fmt.Fprintln(os.Stderr, styles.ErrorMsg(err.Error()))
		}
		return err
	}
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Log file (default gridsheet.log next to the config)")

	addDisplayFlags(rootCmd)

	// Version flag template to show more info
	rootCmd.SetVersionTemplate(fmt.Sprintf("gridsheet version %s\n  commit: %s\n  built:  %s\n", Version, CommitSHA, BuildDate))

	rootCmd.AddCommand(
		newOpenCmd(),
		newSQLCmd(),
		newConfigCmd(),
		newDoctorCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
}

// setup handles the global flags: colors, config and logging.
func setup(cmd *cobra.Command, args []string) error {
	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor {
		styles.SetNoColor(true)
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return util.NewError("Cannot load config").
			WithContext(path).
			WithSuggestion("Fix or remove the file, then run: gridsheet config --list").
			Wrap(err)
	}

	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = cfg.Log.Level
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	file, _ := cmd.Flags().GetString("log-file")
	if file == "" {
		file = cfg.LogFile(path)
	}

	logger, closer, err := logging.New(level, file)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.WarningMsg(fmt.Sprintf("logging disabled: %v", err)))
		logger, closer = zerolog.Nop(), func() {}
	}
	log.Logger = logger

	app.cfg = cfg
	app.cfgPath = path
	app.closeLog = closer

	log.Debug().
		Str("command", cmd.CommandPath()).
		Str("config", path).
		Str("version", Version).
		Msg("starting")
	return nil
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for gridsheet.

To load completions:

Bash:
  $ source <(gridsheet completion bash)

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  $ gridsheet completion zsh > "${fpath[1]}/_gridsheet"

Fish:
  $ gridsheet completion fish | source

PowerShell:
  PS> gridsheet completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gridsheet version %s\n", Version)
			fmt.Printf("  commit: %s\n", CommitSHA)
			fmt.Printf("  built:  %s\n", BuildDate)
		},
	}
}

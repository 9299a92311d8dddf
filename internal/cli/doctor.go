package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/imgajeed76/gridsheet/internal/source"
	"github.com/imgajeed76/gridsheet/internal/ui/styles"
	"github.com/imgajeed76/gridsheet/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment and diagnose issues",
		Long: `Run diagnostics to check if gridsheet is properly set up.

This command checks:
  - Config file
  - Log file
  - Terminal (interactive view and mouse support)
  - Clipboard access (for y / Y)
  - Database connectivity (when sql.url is set)`,
		Args: cobra.NoArgs,
		RunE: runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println(styles.Boldf("gridsheet doctor"))
	fmt.Println()

	allOK := true

	// Config file
	fmt.Print("Checking config file... ")
	if _, err := os.Stat(app.cfgPath); err == nil {
		fmt.Println(styles.Successf("OK") + fmt.Sprintf(" (%s)", app.cfgPath))
	} else {
		fmt.Println(styles.Mute("NOT CREATED"))
		fmt.Println("  Defaults are in use; 'gridsheet config <key> <value>' creates it")
	}

	// Log file
	fmt.Print("Checking log file... ")
	logFile := app.cfg.LogFile(app.cfgPath)
	if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err != nil {
		fmt.Println(styles.Errorf("NOT WRITABLE"))
		fmt.Printf("  Error: %v\n", err)
		allOK = false
	} else {
		_ = f.Close()
		fmt.Println(styles.Successf("OK") + fmt.Sprintf(" (%s)", logFile))
	}

	// Terminal
	fmt.Print("Checking terminal... ")
	if term.IsTerminal(int(os.Stdout.Fd())) {
		w, h, _ := term.GetSize(int(os.Stdout.Fd()))
		fmt.Println(styles.Successf("OK") + fmt.Sprintf(" (%dx%d)", w, h))
	} else {
		fmt.Println(styles.Warningf("NOT A TTY"))
		fmt.Println("  Sheets will be printed as plain tables")
	}

	// Clipboard
	fmt.Print("Checking clipboard... ")
	if clipboard.Unsupported {
		fmt.Println(styles.Warningf("UNAVAILABLE"))
		fmt.Println("  Install xclip, xsel or wl-clipboard to copy cells")
	} else {
		fmt.Println(styles.Successf("OK"))
	}

	// Database
	fmt.Print("Checking database connection... ")
	if app.cfg.SQL.URL == "" {
		fmt.Println(styles.Mute("NOT CONFIGURED"))
	} else {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		version, err := source.Ping(ctx, app.cfg.SQL.URL)
		if err != nil {
			fmt.Println(styles.Errorf("FAILED"))
			fmt.Printf("  Error: %v\n", err)
			allOK = false
		} else {
			fmt.Println(styles.Successf("OK") + fmt.Sprintf(" (PostgreSQL %s, %s)", version, util.RedactURL(app.cfg.SQL.URL)))
		}
	}

	fmt.Println()
	if allOK {
		fmt.Println(styles.Successf("All checks passed!"))
	} else {
		fmt.Println(styles.Warningf("Some issues were found. See above for details."))
	}

	return nil
}

// Package sheet is the terminal render adapter for the grid engine. It
// draws the header, toolbar, grid and footer tabs with lipgloss, feeds
// bubbletea key and mouse input to a grid.Engine, and scrolls the viewport
// when the engine asks for it. Non-interactive callers get plain, raw or
// JSON output instead.
package sheet

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/imgajeed76/gridsheet/internal/source"
	zone "github.com/lrstanley/bubblezone"
	"golang.org/x/term"
)

// DisplayOptions controls how a sheet is rendered.
type DisplayOptions struct {
	// JSON outputs records as a JSON array of objects.
	JSON bool
	// Raw outputs tab-separated values (for piping).
	Raw bool
	// NoPager forces plain table output even on a TTY.
	NoPager bool
}

// Display picks the output mode from options and environment, then renders
// the sheet.
func Display(s *source.Sheet, dopts DisplayOptions, opts Options) error {
	if dopts.Raw {
		PrintRaw(os.Stdout, s)
		return nil
	}

	if dopts.JSON {
		return PrintJSON(os.Stdout, s)
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	if !isTTY || dopts.NoPager {
		PrintPlainTable(os.Stdout, s)
		return nil
	}

	return Run(s, opts)
}

// Run launches the interactive sheet view. It blocks until the user quits.
// If the user requests an export (J/R/P), the sheet is printed to stdout
// after the view exits.
func Run(s *source.Sheet, opts Options) error {
	z := zone.New()
	defer z.Close()
	m := newSheetModel(s, opts, z)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(sheetModel); ok {
		fm.log.Debug().Msg("sheet closed")
		switch fm.exitMode {
		case exitJSON:
			return PrintJSON(os.Stdout, s)
		case exitRaw:
			PrintRaw(os.Stdout, s)
		case exitPlain:
			PrintPlainTable(os.Stdout, s)
		}
	}

	return nil
}

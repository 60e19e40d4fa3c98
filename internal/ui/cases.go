package ui

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cqlex/internal/config"
	"cqlex/internal/domain"
)

// CaseViewer displays extracted test cases in an interactive TUI
type CaseViewer struct {
	config *config.Config
}

// NewCaseViewer creates a new CaseViewer
func NewCaseViewer(cfg *config.Config) *CaseViewer {
	return &CaseViewer{config: cfg}
}

// caseEntry flattens one test case with its file and function context for
// the list.
type caseEntry struct {
	Source   string
	Function string
	Index    int
	Case     domain.TestCase
}

// View displays extracted cases in an interactive TUI
func (cv *CaseViewer) View(output *domain.ExtractOutput) error {
	var entries []caseEntry
	for _, file := range output.Files {
		for _, fn := range file.Functions {
			for i, tc := range fn.Cases {
				entries = append(entries, caseEntry{
					Source:   file.Source,
					Function: fn.Function,
					Index:    i,
					Case:     tc,
				})
			}
		}
	}

	if len(entries) == 0 {
		color.Yellow("No extracted test cases found")
		return nil
	}

	app := tview.NewApplication()

	// List of cases (left side)
	list := tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true)

	for i, entry := range entries {
		mainText := fmt.Sprintf("[yellow]%d.[white] %s", i+1, entry.Case.Name)
		list.AddItem(mainText, "[gray]"+entry.Function, 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Stats header (shows file and function of the selected case)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Case details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" Extracted Test Cases (%d total from %d file(s)) | Use ↑↓ to navigate, → to view details, ← to go back, Ctrl+C to exit ",
		len(entries), len(output.Files)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(entries) {
			entry := entries[index]
			statsView.SetText(cv.formatCaseStats(entry, index+1))
			detailsView.SetText(cv.formatCaseDetails(entry))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatCaseStats formats the header line for a case using tview color tags
func (cv *CaseViewer) formatCaseStats(entry caseEntry, number int) string {
	return fmt.Sprintf("\n [cyan]File:[white] %s  [cyan]Function:[white] %s  [cyan]Case:[white] %d",
		entry.Source, entry.Function, number)
}

// formatCaseDetails formats one extracted case for display
func (cv *CaseViewer) formatCaseDetails(entry caseEntry) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[green]%s[white]\n\n", entry.Case.Name)

	fmt.Fprintf(w, "[cyan]CQL:[white]\n%s\n\n", entry.Case.CQL)

	expected, err := json.MarshalIndent(entry.Case.Expected, "", "  ")
	if err != nil {
		expected = []byte("<unrenderable>")
	}
	fmt.Fprintf(w, "[cyan]Expected (%s):[white]\n%s\n", entry.Case.Expected.Kind, expected)

	w.Flush()
	return builder.String()
}

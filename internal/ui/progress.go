package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar creates and manages progress bars
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar over the given file count
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(
			color.CyanString("Extracting tests: ")+
				color.GreenString("[cases: 0")+
				" | "+
				color.YellowString("opaque: 0]"),
		),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Update advances the bar by one file and refreshes the case counts
func (p *ProgressBar) Update(filesDone, caseCount, opaqueCount int) {
	p.bar.Set(filesDone)
	p.bar.Describe(
		color.CyanString("Extracting tests: ") +
			color.GreenString("[cases: %d", caseCount) +
			" | " +
			color.YellowString("opaque: %d]", opaqueCount),
	)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}

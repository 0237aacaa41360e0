package cli

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// LoadProgress renders catalog load progress as a bar on writer.
type LoadProgress struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
}

// NewLoadProgress creates a progress reporter. The bar is created lazily
// once the total is known.
func NewLoadProgress(writer io.Writer) *LoadProgress {
	return &LoadProgress{writer: writer}
}

// Update matches catalog.ProgressFunc.
func (p *LoadProgress) Update(done, total int) {
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.writer),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("[cyan][bold]Loading categories...[reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[red]=[reset]",
				SaucerHead:    "[red]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionClearOnFinish(),
		)
	}
	_ = p.bar.Set(done)
}

// Finish completes the bar if one was started.
func (p *LoadProgress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

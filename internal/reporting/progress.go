package reporting

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

func newProgressBar(maxTicks int, w io.Writer, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(maxTicks,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// TrackImport calls fn for every index in [0, total) and stops at the first error.
func TrackImport(w io.Writer, total int, description string, fn func(i int) error) error {
	bar := newProgressBar(total, w, description)
	for i := 0; i < total; i++ {
		if err := fn(i); err != nil {
			_ = bar.Exit()
			return fmt.Errorf("item %d: %w", i+1, err)
		}
		_ = bar.Add(1)
	}
	return bar.Finish()
}

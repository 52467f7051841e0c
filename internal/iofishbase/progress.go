package iofishbase

import (
	"github.com/cheggaaa/pb/v3"
)

// progress wraps a progress bar so that a nil bar is a no-op.
type progress struct {
	bar *pb.ProgressBar
}

// newProgressBar creates a new progress bar with consistent
// settings.
func newProgressBar(total int, prefix string) progress {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix+" ")
	bar.Set(pb.CleanOnFinish, true)
	return progress{bar: bar}
}

func (p progress) SetCurrent(n int64) {
	if p.bar != nil {
		p.bar.SetCurrent(n)
	}
}

func (p progress) Add(n int) {
	if p.bar != nil {
		p.bar.Add(n)
	}
}

func (p progress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}

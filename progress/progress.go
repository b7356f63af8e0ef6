package progress

import (
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type Progress struct {
	progress *mpb.Progress
	step     time.Duration
}

// New draws bars on w. Each countdown bar advances once per step.
func New(w io.Writer, step time.Duration) *Progress {
	if step <= 0 {
		step = time.Second
	}

	return &Progress{
		progress: mpb.New(mpb.WithOutput(w), mpb.WithWidth(40)),
		step:     step,
	}
}

// NewBar adds a countdown bar of d split into steps.
func (p *Progress) NewBar(d time.Duration, text string) *mpb.Bar {
	bar := p.progress.AddBar(p.steps(d),
		mpb.PrependDecorators(
			decor.Name(text, decor.WC{W: 12, C: decor.DindentRight}),
			decor.CountersNoUnit(" %d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Elapsed(decor.ET_STYLE_GO, decor.WC{W: 12, C: decor.DindentRight}),
		),
		mpb.BarRemoveOnComplete(),
	)

	return bar
}

// Sleep blocks for d, advancing bar once per step. It cannot be cancelled.
func (p *Progress) Sleep(d time.Duration, bar *mpb.Bar) {
	for d > 0 {
		tick := min(p.step, d)
		time.Sleep(tick)
		d -= tick
		bar.Increment()
	}
}

func (p *Progress) Wait() {
	p.progress.Wait()
}

func (p *Progress) steps(d time.Duration) int64 {
	return int64((d + p.step - 1) / p.step)
}

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Workers report tried candidates in batches of this size, keeps the bar lock cold
const progressBatch = 1 << 14

type roundProgress struct {
	pb *progressbar.ProgressBar
}

func newRoundProgress(w io.Writer, length int, total int64) *roundProgress {
	if w == nil {
		return nil
	}
	return &roundProgress{
		pb: progressbar.NewOptions64(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(fmt.Sprintf("Length %d", length)),
			progressbar.OptionSetItsString("hashes"),
			progressbar.OptionShowIts(),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		),
	}
}

func (rp *roundProgress) add(n int64) {
	if rp == nil || n == 0 {
		return
	}
	rp.pb.Add64(n)
}

func (rp *roundProgress) close() {
	if rp == nil {
		return
	}
	rp.pb.Clear()
}

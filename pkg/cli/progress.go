package cli

import (
	"github.com/BrugadaSyndrome/bslogger"
	"sync"
)

// progressSteps is how many times a render reports progress.
const progressSteps = 10

// progressReporter logs each time another tenth of the rows is finished.
// Rows finish on many goroutines; the logger is not safe for concurrent use.
type progressReporter struct {
	mu     sync.Mutex
	logger *bslogger.Logger
}

// step returns the number of tenths finished once done of total rows are.
func step(done, total int) int {
	return done * progressSteps / total
}

func (p *progressReporter) Report(done, total int) {
	if total <= 0 || step(done, total) == step(done-1, total) {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.logger.Infof("rendered %d/%d rows (%d%%)", done, total, 100*done/total)
}

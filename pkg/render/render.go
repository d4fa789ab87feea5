// Package render turns a Fractal and a Viewport into an RGB image.
package render

import (
	"context"
	"github.com/willbeason/escape-fractal/pkg/palette"
	"runtime"
	"sync"
	"sync/atomic"
)

// Options control how a frame is computed. They never change its content.
type Options struct {
	// Workers is the number of goroutines computing rows. Zero or less uses
	// one per CPU.
	Workers int

	// Progress, if set, is called once for each finished row with the number
	// of rows finished so far. It is called from worker goroutines.
	Progress func(done, total int)
}

func (o Options) workers(rows int) int {
	n := o.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > rows {
		n = rows
	}
	return n
}

// Render computes the image of f over v, width pixels wide. The height follows
// from the aspect ratio of v.
//
// If ctx is cancelled no further rows are started, and Render returns the
// context's error once the rows already in progress finish.
func Render(ctx context.Context, f Fractal, v Viewport, maxIter, width int, opts Options) (*Buffer, error) {
	width, height, err := v.Size(width)
	if err != nil {
		return nil, err
	}

	// The table must be complete before any pixel is colored.
	table, err := palette.NewTable(maxIter)
	if err != nil {
		return nil, err
	}

	buf := NewBuffer(width, height)
	dx, dy := v.Steps(width, height)

	rows := make(chan int)

	go func() {
		defer close(rows)
		for y := 0; y < height; y++ {
			if ctx.Err() != nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			case rows <- y:
			}
		}
	}()

	var done atomic.Int64

	parallel := opts.workers(height)

	wg := sync.WaitGroup{}
	wg.Add(parallel)
	for i := 0; i < parallel; i++ {
		go func() {
			defer wg.Done()
			for y := range rows {
				row := buf.Row(y)

				for x := 0; x < width; x++ {
					c := table.Color(f.Escape(v.at(x, height-1-y, dx, dy), maxIter))

					row[3*x] = c.R
					row[3*x+1] = c.G
					row[3*x+2] = c.B
				}

				n := done.Add(1)
				if opts.Progress != nil {
					opts.Progress(int(n), height)
				}
			}
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil && int(done.Load()) < height {
		return nil, err
	}

	return buf, nil
}

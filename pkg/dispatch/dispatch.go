// Package dispatch implements the row-granular parallel pixel dispatcher of
// a task channel of row indices, a result channel of rendered rows,
// and ordered reassembly on the main goroutine.
package dispatch

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/asvard/gotrace/pkg/core"
	"github.com/asvard/gotrace/pkg/integrator"
)

// Row is a single rendered scanline, tagged with its original index so the
// main goroutine can place it back in order regardless of completion order.
type Row struct {
	Index  int
	Pixels []RGB
}

// RGB is a packed, gamma-encoded pixel triple ready for output.
type RGB struct {
	R, G, B uint8
}

// Options configures a Render call.
type Options struct {
	Workers int // 0 selects runtime.NumCPU()
	Logger  core.Logger
}

// Render renders scene into a width x height image, spreading rows across
// Workers goroutines and returning rows in top-to-bottom order. Each worker
// owns an independent *rand.Rand.
func Render(scene core.Scene, width, height, samples, maxDepth int, opts Options) [][]RGB {
	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	taskChan := make(chan int, height)
	resultChan := make(chan Row, height)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		workerSeed := int64(w) + 1
		go func(seed int64) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))
			for row := range taskChan {
				resultChan <- renderRow(scene, row, width, samples, maxDepth, rnd)
			}
		}(workerSeed)
	}

	for row := 0; row < height; row++ {
		taskChan <- row
	}
	close(taskChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	image := make([][]RGB, height)
	received := 0
	for row := range resultChan {
		image[row.Index] = row.Pixels
		received++
		if opts.Logger != nil {
			opts.Logger.Printf("Progress: %d%% ", (received*100)/height)
		}
	}

	return image
}

func renderRow(scene core.Scene, row, width, samples, maxDepth int, rnd *rand.Rand) Row {
	pixels := make([]RGB, width)
	for col := 0; col < width; col++ {
		c := integrator.PixelColor(scene, col, row, samples, maxDepth, rnd)
		r, g, b := integrator.EncodeByte(c)
		pixels[col] = RGB{R: r, G: g, B: b}
	}
	return Row{Index: row, Pixels: pixels}
}

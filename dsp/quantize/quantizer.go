package quantize

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-deltasigma/dsp/core"
)

// chunkElems caps the length of one range handed to a worker.
const chunkElems = 1 << 12

// Quantizer maps sample matrices onto the levels of a mid-rise or mid-tread
// quantizer chosen per row. A Quantizer holds only configuration and is
// safe for concurrent use.
type Quantizer struct {
	workers           int
	parallelThreshold int
}

var defaultQuantizer = &Quantizer{
	workers:           defaultWorkers,
	parallelThreshold: defaultParallelThreshold,
}

// NewQuantizer creates a new Quantizer. The default configuration runs on
// the calling goroutine.
func NewQuantizer(opts ...Option) (*Quantizer, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	return &Quantizer{
		workers:           cfg.workers,
		parallelThreshold: cfg.parallelThreshold,
	}, nil
}

// Quantize quantizes y with order n using the default single-goroutine
// Quantizer.
func Quantize(y [][]float64, n Order) ([][]float64, error) {
	return defaultQuantizer.Quantize(y, n)
}

// QuantizeSample quantizes a single sample with order n.
func QuantizeSample(y, n float64) (float64, error) {
	p, err := planFor(-1, n)
	if err != nil {
		return 0, err
	}

	buf := [1]float64{y}
	quantizeRow(buf[:], buf[:], p)

	return buf[0], nil
}

// Quantize returns a newly allocated matrix holding y quantized with order n.
//
// Every output value v in row r satisfies |v| <= N[r]-1 and is odd when
// N[r] is even, even when N[r] is odd. Invalid orders and shape mismatches
// are reported before any output is computed.
func (q *Quantizer) Quantize(y [][]float64, n Order) ([][]float64, error) {
	return q.QuantizeInto(nil, y, n)
}

// QuantizeInto is like Quantize but writes into dst, reusing its rows when
// their capacity suffices, and returns the resulting matrix. dst may be y
// itself for in-place quantization. On error dst is left untouched.
func (q *Quantizer) QuantizeInto(dst, y [][]float64, n Order) ([][]float64, error) {
	cols, err := sampleColumns(y)
	if err != nil {
		return dst, err
	}

	plans, err := n.resolve(len(y))
	if err != nil {
		return dst, err
	}

	dst = core.EnsureRows(dst, len(y), cols)

	err = q.run(dst, y, plans, cols)
	if err != nil {
		return dst, fmt.Errorf("quantize: %w", err)
	}

	return dst, nil
}

// Workers returns the configured number of worker goroutines.
func (q *Quantizer) Workers() int { return q.workers }

// ParallelThreshold returns the minimum element count for parallel runs.
func (q *Quantizer) ParallelThreshold() int { return q.parallelThreshold }

func sampleColumns(y [][]float64) (int, error) {
	if len(y) == 0 {
		return 0, nil
	}

	cols := len(y[0])
	if cols == 0 {
		return 0, fmt.Errorf("%w: sample rows must not be empty", ErrShapeMismatch)
	}

	for r, row := range y {
		if len(row) != cols {
			return 0, fmt.Errorf("%w: sample row %d has %d columns, want %d",
				ErrShapeMismatch, r, len(row), cols)
		}
	}

	return cols, nil
}

// run splits the flattened matrix into contiguous element ranges of at
// most chunkElems elements and quantizes them on up to q.workers goroutines.
// Ranges may start or end mid-row.
func (q *Quantizer) run(dst, y [][]float64, plans []rowPlan, cols int) error {
	total := len(y) * cols

	workers := q.workers
	if workers <= 1 || total < q.parallelThreshold || total < workers {
		quantizeRange(dst, y, plans, cols, 0, total)
		return nil
	}

	size := chunkSize(total, workers)

	var group errgroup.Group
	group.SetLimit(workers)

	for start := 0; start < total; start += size {
		end := min(start+size, total)

		group.Go(func() error {
			quantizeRange(dst, y, plans, cols, start, end)
			return nil
		})
	}

	return group.Wait()
}

// chunkSize returns the range length used to split total elements over
// workers: an even share, capped at chunkElems so large matrices queue more
// ranges than there are workers.
func chunkSize(total, workers int) int {
	return max(1, min(chunkElems, (total+workers-1)/workers))
}

// quantizeRange quantizes the flattened element range [start, end).
func quantizeRange(dst, y [][]float64, plans []rowPlan, cols, start, end int) {
	for pos := start; pos < end; {
		r, c := pos/cols, pos%cols
		stop := min(cols, c+end-pos)

		quantizeRow(dst[r][c:stop], y[r][c:stop], plans[r])
		pos += stop - c
	}
}

// quantizeRow applies the row's rule to every sample, then saturates the
// whole row at ±bound.
func quantizeRow(dst, src []float64, p rowPlan) {
	switch p.variant {
	case MidRise:
		for i, y := range src {
			dst[i] = 2*math.Floor(0.5*y) + 1
		}
	case MidTread:
		for i, y := range src {
			dst[i] = 2 * math.Floor(0.5*(y+1))
		}
	}

	for i, v := range dst {
		dst[i] = core.Clamp(v, -p.bound, p.bound)
	}
}

package quantize

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-deltasigma/internal/testutil"
)

func benchmarkMatrix(rows, cols int) [][]float64 {
	y := make([][]float64, rows)
	for r := range y {
		y[r] = testutil.DeterministicNoise(uint64(r+1), 8, cols)
	}
	return y
}

func BenchmarkQuantizeSample(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		_, _ = QuantizeSample(0.3, 4)
	}
}

func BenchmarkQuantizeInto(b *testing.B) {
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			q, err := NewQuantizer(WithWorkers(workers))
			if err != nil {
				b.Fatal(err)
			}

			y := benchmarkMatrix(8, 1<<14)
			order := PerRow(2, 3, 4, 5, 6, 7, 8, 9)
			dst, _ := q.QuantizeInto(nil, y, order)

			b.ReportAllocs()
			b.SetBytes(int64(8 * (1 << 14) * 8))

			for b.Loop() {
				dst, _ = q.QuantizeInto(dst, y, order)
			}
		})
	}
}

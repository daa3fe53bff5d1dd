package quantize

import (
	"fmt"

	"github.com/cwbudde/algo-deltasigma/dsp/core"
)

// MaxLevelsOrder is the largest order [Levels] builds a table for.
const MaxLevelsOrder = 1 << 20

// defaultOrder is the order used by the zero [Order]: a two-level
// mid-rise quantizer.
const defaultOrder = 2

// Variant identifies the quantizer family selected by the parity of N.
type Variant int

const (
	// MidRise has no level at zero; its levels are odd integers (even N).
	MidRise Variant = iota
	// MidTread has a level at zero; its levels are even integers (odd N).
	MidTread
)

func (v Variant) String() string {
	switch v {
	case MidRise:
		return "mid-rise"
	case MidTread:
		return "mid-tread"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Order is the quantizer order specification: either one order shared by
// every row, or one order per row. The zero Order is Shared(2).
type Order struct {
	values []float64
	perRow bool
}

// Shared returns an order applied to every row of the sample matrix.
func Shared(n float64) Order {
	return Order{values: []float64{n}}
}

// PerRow returns an order with one entry per sample row. The number of
// entries must equal the number of rows passed to Quantize.
func PerRow(n ...float64) Order {
	return Order{values: append([]float64(nil), n...), perRow: true}
}

// OrderFromMatrix builds a per-row order from a 1xR or Rx1 matrix. Any
// other shape fails with [ErrShapeMismatch].
func OrderFromMatrix(m [][]float64) (Order, error) {
	if len(m) == 0 {
		return Order{}, fmt.Errorf("%w: empty order matrix", ErrShapeMismatch)
	}

	cols := len(m[0])
	for r, row := range m {
		if len(row) != cols {
			return Order{}, fmt.Errorf("%w: order matrix row %d has %d columns, want %d",
				ErrShapeMismatch, r, len(row), cols)
		}
	}

	switch {
	case len(m) == 1 && cols > 0:
		return PerRow(m[0]...), nil
	case cols == 1:
		values := make([]float64, len(m))
		for r, row := range m {
			values[r] = row[0]
		}

		return PerRow(values...), nil
	default:
		return Order{}, fmt.Errorf("%w: order matrix is %dx%d, want a single row or column",
			ErrShapeMismatch, len(m), cols)
	}
}

// IsPerRow reports whether o carries one order per row.
func (o Order) IsPerRow() bool { return o.perRow }

// Len returns the number of order entries (1 for a shared order).
func (o Order) Len() int {
	if !o.perRow && len(o.values) == 0 {
		return 1
	}
	return len(o.values)
}

// rowPlan is an order resolved for one row.
type rowPlan struct {
	variant Variant
	bound   float64 // saturation limit L = N-1
}

func planFor(row int, n float64) (rowPlan, error) {
	k, ok := core.AsInteger(n)
	if !ok || k < 1 {
		return rowPlan{}, invalidOrder(row, n)
	}

	variant := MidTread
	if core.IsEven(k) {
		variant = MidRise
	}

	return rowPlan{variant: variant, bound: float64(k - 1)}, nil
}

// resolve expands o into one plan per row. Order values are validated
// before the row count is checked.
func (o Order) resolve(rows int) ([]rowPlan, error) {
	if !o.perRow {
		n := float64(defaultOrder)
		if len(o.values) > 0 {
			n = o.values[0]
		}

		p, err := planFor(-1, n)
		if err != nil {
			return nil, err
		}

		plans := make([]rowPlan, rows)
		for r := range plans {
			plans[r] = p
		}

		return plans, nil
	}

	plans := make([]rowPlan, len(o.values))
	for r, n := range o.values {
		p, err := planFor(r, n)
		if err != nil {
			return nil, err
		}

		plans[r] = p
	}

	if len(plans) != rows {
		return nil, fmt.Errorf("%w: %d orders for %d sample rows", ErrShapeMismatch, len(plans), rows)
	}

	return plans, nil
}

// VariantOf returns the quantizer family for order n.
func VariantOf(n float64) (Variant, error) {
	p, err := planFor(-1, n)
	if err != nil {
		return 0, err
	}
	return p.variant, nil
}

// Levels returns the n output levels of an order-n quantizer in ascending
// order. The table holds n values, so orders above [MaxLevelsOrder] are
// rejected with [ErrInvalidOrderValue].
func Levels(n float64) ([]float64, error) {
	p, err := planFor(-1, n)
	if err != nil {
		return nil, err
	}

	if p.bound+1 > MaxLevelsOrder {
		return nil, fmt.Errorf("%w: level table for order %v exceeds %d entries",
			ErrInvalidOrderValue, n, MaxLevelsOrder)
	}

	count := int(p.bound) + 1
	levels := make([]float64, count)

	for i := range levels {
		levels[i] = -p.bound + 2*float64(i)
	}

	return levels, nil
}

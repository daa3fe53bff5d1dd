// Package quantize implements the multi-level quantizer used in delta-sigma
// modulator simulation.
//
// Each row of a sample matrix is an independent channel with its own
// quantizer order N. The parity of N selects the quantizer family:
//
//   - even N: mid-rise, v = 2*floor(y/2) + 1, output levels are odd integers
//   - odd N: mid-tread, v = 2*floor((y+1)/2), output levels are even integers
//
// Both families share a step height of 2 and saturate symmetrically at
// ±(N-1), so an order-N quantizer has exactly N output levels.
//
// The order is passed as an explicit [Order]: [Shared] for one order across
// all rows, [PerRow] for one order per row. It is resolved into a per-row
// plan before any sample is touched, so invalid orders and shape mismatches
// fail without producing partial output.
package quantize

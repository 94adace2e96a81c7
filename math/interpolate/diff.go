package interpolate

import (
	"fmt"

	"github.com/YYHWJJ/tf-quant-finance/math/diff"
)

// InterpolateValue evaluates the piecewise-linear curve through the knots
// (xData, yData) at every element of x, recording the computation on t so
// that reverse-mode gradients flow back to both xData and yData. The
// semantics match Interpolate exactly, including the extrapolation options
// and length-1 yData broadcast.
//
// Every branch of the computation is evaluated for every query point before
// masked selection, and every branch is finite for all inputs: the
// bracketing indices always name two distinct knots, so no division can
// produce a NaN that would contaminate the gradient of an unselected
// branch.
func InterpolateValue(
	t *diff.Tape, x []float64, xData, yData *diff.Value, opts ...Option,
) (*diff.Value, error) {

	nd, ny := len(xData.Data), len(yData.Data)
	if nd == 0 || ny == 0 {
		return nil, fmt.Errorf(
			"Empty knot table: len(xData) = %d and len(yData) = %d.", nd, ny,
		)
	}
	if ny != nd && ny != 1 {
		return nil, fmt.Errorf(
			"len(xData) = %d, but len(yData) = %d.", nd, ny,
		)
	}
	if xData.Tape() != t || yData.Tape() != t {
		panic("Knot Values given to InterpolateValue() belong to a " +
			"different Tape.")
	}

	opt := options{}
	for _, o := range opts {
		o(&opt)
	}

	var s searcher
	s.init(xData.Data)

	n := len(x)
	first := make([]int, n)
	last := make([]int, n)
	yLastIdx := first
	if ny > 1 {
		yLastIdx = last
	}
	leftMask := make([]bool, n)
	for i, v := range x {
		last[i] = nd - 1
		leftMask[i] = v <= s.x0
	}

	xq := t.Const(append([]float64(nil), x...))

	left := yData.Gather(first).
		Add(xq.Sub(xData.Gather(first)).Scale(opt.leftSlope))
	right := yData.Gather(yLastIdx).
		Add(xq.Sub(xData.Gather(last)).Scale(opt.rightSlope))

	var out *diff.Value
	if nd == 1 {
		// A single knot is pure extrapolation around it.
		out = diff.Select(leftMask, left, right)
	} else {
		rightMask := make([]bool, n)
		lo, hi := make([]int, n), make([]int, n)
		for i, v := range x {
			rightMask[i] = v >= s.lim
			lo[i] = s.bracket(v)
			hi[i] = lo[i] + 1
		}
		yLo, yHi := lo, hi
		if ny == 1 {
			yLo, yHi = first, first
		}

		x1, x2 := xData.Gather(lo), xData.Gather(hi)
		y1, y2 := yData.Gather(yLo), yData.Gather(yHi)
		w := xq.Sub(x1).Div(x2.Sub(x1))
		blend := y1.Add(y2.Sub(y1).Mul(w))

		out = diff.Select(rightMask, right, blend)
		out = diff.Select(leftMask, left, out)
	}

	if opt.dtype == Float32 {
		// out is fresh and unconsumed, so in-place rounding falls within
		// Value's Data contract.
		for i, v := range out.Data {
			out.Data[i] = float64(float32(v))
		}
	}
	return out, nil
}

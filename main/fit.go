package main

import (
	"log"

	"github.com/YYHWJJ/tf-quant-finance/math/diff"
	"github.com/YYHWJJ/tf-quant-finance/math/interpolate"
)

// fit runs gradient descent on the mean squared residual of a
// piecewise-linear curve against the observed points (xs, ys). The knot x
// coordinates are spaced uniformly over the range of the data and the knot
// values start at the data mean. Returns the knot table of the fitted
// curve.
//
// xs must not be empty.
func fit(
	xs, ys []float64, knots, steps int, lr float64,
	opts ...interpolate.Option,
) (knotXs, knotYs []float64) {

	lo, hi := xs[0], xs[0]
	mean := 0.0
	for i := range xs {
		if xs[i] < lo {
			lo = xs[i]
		}
		if xs[i] > hi {
			hi = xs[i]
		}
		mean += ys[i]
	}
	mean /= float64(len(ys))

	knotXs = linspace(lo, hi, knots)
	knotYs = make([]float64, knots)
	for i := range knotYs {
		knotYs[i] = mean
	}

	for step := 0; step < steps; step++ {
		t := diff.NewTape()
		kx := t.Const(knotXs)
		ky := t.Var(knotYs)

		pred, err := interpolate.InterpolateValue(t, xs, kx, ky, opts...)
		if err != nil {
			panic(err.Error())
		}
		loss := pred.Sub(t.Const(ys)).Square().Sum()
		t.Backward(loss)

		// Normalizing by the point count makes lr independent of the size
		// of the data set.
		scale := lr / float64(len(xs))
		for i := range knotYs {
			knotYs[i] -= scale * ky.Grad[i]
		}

		if step%100 == 0 {
			log.Printf(
				"step %4d: mean squared residual %.6g",
				step, loss.Data[0]/float64(len(xs)),
			)
		}
	}

	return knotXs, knotYs
}

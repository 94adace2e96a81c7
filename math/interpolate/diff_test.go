package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YYHWJJ/tf-quant-finance/math/diff"
)

func TestInterpolateValueMatchesInterpolate(t *testing.T) {
	table := []struct {
		xData, yData []float64
		opts         []Option
	}{
		{testXData, testYData, nil},
		{testXData, testYData, []Option{LeftSlope(2), RightSlope(-3)}},
		{testXData, []float64{10}, nil},
		{[]float64{3}, []float64{5}, []Option{LeftSlope(1), RightSlope(4)}},
		{testXData, testYData, []Option{OutputDtype(Float32)}},
	}

	for i, test := range table {
		expected, err := Interpolate(testX, test.xData, test.yData, test.opts...)
		assert.NoError(t, err)

		tape := diff.NewTape()
		xData := tape.Var(test.xData)
		yData := tape.Var(test.yData)
		out, err := InterpolateValue(tape, testX, xData, yData, test.opts...)
		assert.NoError(t, err)

		assert.Len(t, out.Data, len(testX), "%d)", i+1)
		for j := range expected {
			assert.InDelta(t, expected[j], out.Data[j], 1e-12,
				"%d) x = %g", i+1, testX[j])
		}
	}
}

// Queries at and beyond the knot boundaries force every selection branch to
// be evaluated at every point: an unselected non-finite branch would still
// poison the gradient.
func TestValidGradients(t *testing.T) {
	tape := diff.NewTape()
	xData := tape.Var(append([]float64(nil), testXData...))
	yData := tape.Var(append([]float64(nil), testYData...))

	out, err := InterpolateValue(tape, testX, xData, yData)
	assert.NoError(t, err)

	loss := out.Square().Sum()
	tape.Backward(loss)

	for i := range yData.Grad {
		assert.False(t, math.IsNaN(yData.Grad[i]), "yData.Grad[%d]", i)
		assert.False(t, math.IsNaN(xData.Grad[i]), "xData.Grad[%d]", i)
	}
}

func evalLoss(x, xData, yData []float64, opts ...Option) float64 {
	tape := diff.NewTape()
	xd := tape.Var(xData)
	yd := tape.Var(yData)
	out, err := InterpolateValue(tape, x, xd, yd, opts...)
	if err != nil {
		panic(err.Error())
	}
	return out.Square().Sum().Data[0]
}

func TestGradientWrtYDataMatchesFiniteDifferences(t *testing.T) {
	x := []float64{-10, -1.5, 0.3, 3, 6.5, 12, 19, 30, 41}
	opts := []Option{LeftSlope(2), RightSlope(-3)}

	tape := diff.NewTape()
	xData := tape.Var(append([]float64(nil), testXData...))
	yData := tape.Var(append([]float64(nil), testYData...))
	out, err := InterpolateValue(tape, x, xData, yData, opts...)
	assert.NoError(t, err)
	tape.Backward(out.Square().Sum())

	eps := 1e-6
	ys := append([]float64(nil), testYData...)
	for i := range ys {
		orig := ys[i]
		ys[i] = orig + eps
		hi := evalLoss(x, testXData, ys, opts...)
		ys[i] = orig - eps
		lo := evalLoss(x, testXData, ys, opts...)
		ys[i] = orig
		assert.InDelta(t, (hi-lo)/(2*eps), yData.Grad[i], 1e-4,
			"yData.Grad[%d]", i)
	}
}

func TestGradientWrtXDataMatchesFiniteDifferences(t *testing.T) {
	// Queries sit strictly inside intervals or strictly outside the knot
	// range, so a small knot perturbation cannot change any bracketing.
	x := []float64{-10, 0.3, 3, 6.5, 12, 25.5, 41}

	tape := diff.NewTape()
	xData := tape.Var(append([]float64(nil), testXData...))
	yData := tape.Var(append([]float64(nil), testYData...))
	out, err := InterpolateValue(tape, x, xData, yData,
		LeftSlope(0.5), RightSlope(1.5))
	assert.NoError(t, err)
	tape.Backward(out.Square().Sum())

	eps := 1e-6
	xs := append([]float64(nil), testXData...)
	for i := range xs {
		orig := xs[i]
		xs[i] = orig + eps
		hi := evalLoss(x, xs, testYData, LeftSlope(0.5), RightSlope(1.5))
		xs[i] = orig - eps
		lo := evalLoss(x, xs, testYData, LeftSlope(0.5), RightSlope(1.5))
		xs[i] = orig
		assert.InDelta(t, (hi-lo)/(2*eps), xData.Grad[i], 1e-4,
			"xData.Grad[%d]", i)
	}
}

func TestBroadcastGradientAccumulates(t *testing.T) {
	x := []float64{-10, 0, 5, 10, 40}

	tape := diff.NewTape()
	xData := tape.Var(append([]float64(nil), testXData...))
	yData := tape.Var([]float64{10})
	out, err := InterpolateValue(tape, x, xData, yData)
	assert.NoError(t, err)
	tape.Backward(out.Sum())

	// With constant extrapolation every output is the broadcast scalar, so
	// d sum(out)/dy is the number of query points.
	assert.InDelta(t, float64(len(x)), yData.Grad[0], 1e-12)
}

// The Float32 path rounds the output node's Data in place before returning
// it. Downstream operations and the backward pass must see the rounded
// forward values and still produce sane gradients.
func TestFloat32RoundingKeepsGradients(t *testing.T) {
	grads := make([][]float64, 2)
	for i, opts := range [][]Option{nil, {OutputDtype(Float32)}} {
		tape := diff.NewTape()
		xData := tape.Var(append([]float64(nil), testXData...))
		yData := tape.Var(append([]float64(nil), testYData...))
		out, err := InterpolateValue(tape, testX, xData, yData, opts...)
		assert.NoError(t, err)

		loss := out.Square().Sum()
		tape.Backward(loss)
		grads[i] = append([]float64(nil), yData.Grad...)
	}

	for i := range grads[0] {
		assert.False(t, math.IsNaN(grads[1][i]), "yData.Grad[%d]", i)
		assert.InDelta(t, grads[0][i], grads[1][i], 1e-3,
			"rounding-induced gradient drift at knot %d", i)
	}
}

func TestInterpolateValueErrors(t *testing.T) {
	tape := diff.NewTape()

	_, err := InterpolateValue(
		tape, []float64{1, 2}, tape.Var(nil), tape.Var(nil),
	)
	assert.Error(t, err, "empty knots")

	_, err = InterpolateValue(
		tape, []float64{1, 2},
		tape.Var([]float64{-1, 2, 6, 8, 18}), tape.Var(testYData),
	)
	assert.Error(t, err, "non-broadcastable length mismatch")

	other := diff.NewTape()
	assert.Panics(t, func() {
		InterpolateValue(
			other, []float64{1},
			tape.Var([]float64{0, 1}), tape.Var([]float64{0, 1}),
		)
	}, "mixed tapes")
}

/*package interpolate implements 1D piecewise-linear interpolation with
configurable extrapolation beyond the knot range.

The free function Interpolate evaluates a batch of query points in one call.
Curve is the reusable form for repeated lookups against the same knot table.
InterpolateValue is the differentiable form: it builds the same computation
on a diff.Tape so that reverse-mode gradients flow back to the knot values
and positions.
*/
package interpolate

import (
	"fmt"
)

// Dtype selects the floating point precision of interpolated outputs.
type Dtype int

const (
	// Float64 is the default output precision.
	Float64 Dtype = iota
	// Float32 rounds every output through float32 precision.
	Float32
)

type options struct {
	leftSlope, rightSlope float64
	dtype                 Dtype
}

// Option configures extrapolation slopes and output precision.
type Option func(*options)

// LeftSlope sets the slope applied to queries left of the first knot. The
// default of 0 extrapolates with a constant value.
func LeftSlope(s float64) Option {
	return func(opt *options) { opt.leftSlope = s }
}

// RightSlope sets the slope applied to queries right of the last knot. The
// default of 0 extrapolates with a constant value.
func RightSlope(s float64) Option {
	return func(opt *options) { opt.rightSlope = s }
}

// OutputDtype sets the floating point precision of the outputs.
func OutputDtype(d Dtype) Option {
	return func(opt *options) { opt.dtype = d }
}

// checkKnots validates a knot table and expands a length-1 yData across all
// knots. Returns the expanded value table.
func checkKnots(xData, yData []float64) ([]float64, error) {
	if len(xData) == 0 || len(yData) == 0 {
		return nil, fmt.Errorf(
			"Empty knot table: len(xData) = %d and len(yData) = %d.",
			len(xData), len(yData),
		)
	}
	if len(yData) == len(xData) {
		return yData, nil
	}
	if len(yData) == 1 {
		vals := make([]float64, len(xData))
		for i := range vals {
			vals[i] = yData[0]
		}
		return vals, nil
	}
	return nil, fmt.Errorf(
		"len(xData) = %d, but len(yData) = %d.", len(xData), len(yData),
	)
}

// Curve is a piecewise-linear curve through a table of knots, with linear
// extrapolation beyond the outermost knots.
type Curve struct {
	xs   searcher
	vals []float64
	opt  options
}

// NewCurve creates a Curve through the knots (xData[i], yData[i]). xData
// must be strictly increasing and is not validated. A length-1 yData is
// broadcast across all knots.
//
// xData and yData must not be modified throughout the lifetime of the Curve.
func NewCurve(xData, yData []float64, opts ...Option) (*Curve, error) {
	vals, err := checkKnots(xData, yData)
	if err != nil {
		return nil, err
	}

	c := &Curve{vals: vals}
	for _, o := range opts {
		o(&c.opt)
	}
	c.xs.init(xData)
	return c, nil
}

// Eval returns the interpolated value at x. Queries outside the knot range
// follow the curve's extrapolation slopes.
func (c *Curve) Eval(x float64) float64 {
	var y float64
	switch {
	case x <= c.xs.x0:
		y = c.vals[0] + c.opt.leftSlope*(x-c.xs.x0)
	case x >= c.xs.lim:
		y = c.vals[c.xs.n-1] + c.opt.rightSlope*(x-c.xs.lim)
	default:
		i := c.xs.bracket(x)
		x1, x2 := c.xs.xs[i], c.xs.xs[i+1]
		v1, v2 := c.vals[i], c.vals[i+1]
		w := (x - x1) / (x2 - x1)
		y = v1 + (v2-v1)*w
	}

	if c.opt.dtype == Float32 {
		return float64(float32(y))
	}
	return y
}

// EvalAll evaluates the curve at all the given x values. If an output array
// is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (c *Curve) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = c.Eval(x)
	}
	return out[0]
}

// Interpolate evaluates the piecewise-linear curve through the knots
// (xData[i], yData[i]) at every element of x, returning one output per
// query point. xData must be strictly increasing and is not validated. A
// length-1 yData is broadcast across all knots.
//
// Queries beyond the knot range are extrapolated with the LeftSlope and
// RightSlope options, which default to constant extrapolation.
//
// Interpolate fails if the knot table is empty or if xData and yData have
// incompatible lengths.
func Interpolate(x, xData, yData []float64, opts ...Option) ([]float64, error) {
	c, err := NewCurve(xData, yData, opts...)
	if err != nil {
		return nil, err
	}
	return c.EvalAll(x), nil
}

package diff

import (
	"fmt"
)

func checkLens(op string, a, b *Value) {
	if len(a.Data) != len(b.Data) {
		panic(fmt.Sprintf(
			"%s() given Values of length %d and %d.",
			op, len(a.Data), len(b.Data),
		))
	}
	if a.tape != b.tape {
		panic(fmt.Sprintf("%s() given Values from different Tapes.", op))
	}
}

// Add returns the element-wise sum a + b.
func (a *Value) Add(b *Value) *Value {
	checkLens("Add", a, b)
	out := make([]float64, len(a.Data))
	for i := range out {
		out[i] = a.Data[i] + b.Data[i]
	}
	res := a.tape.node(out)
	res.back = func() {
		for i, g := range res.Grad {
			a.Grad[i] += g
			b.Grad[i] += g
		}
	}
	return res
}

// Sub returns the element-wise difference a - b.
func (a *Value) Sub(b *Value) *Value {
	checkLens("Sub", a, b)
	out := make([]float64, len(a.Data))
	for i := range out {
		out[i] = a.Data[i] - b.Data[i]
	}
	res := a.tape.node(out)
	res.back = func() {
		for i, g := range res.Grad {
			a.Grad[i] += g
			b.Grad[i] -= g
		}
	}
	return res
}

// Mul returns the element-wise product a * b.
func (a *Value) Mul(b *Value) *Value {
	checkLens("Mul", a, b)
	out := make([]float64, len(a.Data))
	for i := range out {
		out[i] = a.Data[i] * b.Data[i]
	}
	res := a.tape.node(out)
	res.back = func() {
		for i, g := range res.Grad {
			a.Grad[i] += g * b.Data[i]
			b.Grad[i] += g * a.Data[i]
		}
	}
	return res
}

// Div returns the element-wise quotient a / b. The gradient of both
// arguments is finite wherever b is non-zero.
func (a *Value) Div(b *Value) *Value {
	checkLens("Div", a, b)
	out := make([]float64, len(a.Data))
	for i := range out {
		out[i] = a.Data[i] / b.Data[i]
	}
	res := a.tape.node(out)
	res.back = func() {
		for i, g := range res.Grad {
			a.Grad[i] += g / b.Data[i]
			b.Grad[i] -= g * a.Data[i] / (b.Data[i] * b.Data[i])
		}
	}
	return res
}

// Scale returns a * c for a scalar constant c.
func (a *Value) Scale(c float64) *Value {
	out := make([]float64, len(a.Data))
	for i := range out {
		out[i] = a.Data[i] * c
	}
	res := a.tape.node(out)
	res.back = func() {
		for i, g := range res.Grad {
			a.Grad[i] += g * c
		}
	}
	return res
}

// Shift returns a + c for a scalar constant c.
func (a *Value) Shift(c float64) *Value {
	out := make([]float64, len(a.Data))
	for i := range out {
		out[i] = a.Data[i] + c
	}
	res := a.tape.node(out)
	res.back = func() {
		for i, g := range res.Grad {
			a.Grad[i] += g
		}
	}
	return res
}

// Square returns the element-wise square of a.
func (a *Value) Square() *Value {
	out := make([]float64, len(a.Data))
	for i := range out {
		out[i] = a.Data[i] * a.Data[i]
	}
	res := a.tape.node(out)
	res.back = func() {
		for i, g := range res.Grad {
			a.Grad[i] += 2 * g * a.Data[i]
		}
	}
	return res
}

// Gather returns the Value with elements a.Data[idx[0]], a.Data[idx[1]], ...
// Indices may repeat: the backward pass accumulates the gradient of every
// output element onto the input element it was read from.
func (a *Value) Gather(idx []int) *Value {
	out := make([]float64, len(idx))
	for i, j := range idx {
		if j < 0 || j >= len(a.Data) {
			panic(fmt.Sprintf(
				"Gather() index %d out of range for Value of length %d.",
				j, len(a.Data),
			))
		}
		out[i] = a.Data[j]
	}
	res := a.tape.node(out)
	res.back = func() {
		for i, g := range res.Grad {
			a.Grad[idx[i]] += g
		}
	}
	return res
}

// Sum returns a length-1 Value holding the sum of a's elements.
func (a *Value) Sum() *Value {
	total := 0.0
	for _, x := range a.Data {
		total += x
	}
	res := a.tape.node([]float64{total})
	res.back = func() {
		g := res.Grad[0]
		for i := range a.Grad {
			a.Grad[i] += g
		}
	}
	return res
}

// Select returns the element-wise choice between a and b: a[i] where mask[i]
// is true and b[i] otherwise. The gradient flows only into the selected
// branch of each element, so a non-finite gradient in an unselected branch
// cannot contaminate the result.
func Select(mask []bool, a, b *Value) *Value {
	checkLens("Select", a, b)
	if len(mask) != len(a.Data) {
		panic(fmt.Sprintf(
			"Select() given mask of length %d for Values of length %d.",
			len(mask), len(a.Data),
		))
	}
	out := make([]float64, len(a.Data))
	for i := range out {
		if mask[i] {
			out[i] = a.Data[i]
		} else {
			out[i] = b.Data[i]
		}
	}
	res := a.tape.node(out)
	res.back = func() {
		for i, g := range res.Grad {
			if mask[i] {
				a.Grad[i] += g
			} else {
				b.Grad[i] += g
			}
		}
	}
	return res
}

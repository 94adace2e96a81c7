/*package diff implements reverse-mode automatic differentiation for
computations on 1D float64 vectors.

A Tape records every Value created through its constructors and every
operation applied to those Values. Calling Backward on a Value fills in the
Grad field of every Value that contributed to it. Operations evaluate
eagerly, so Data is always valid as soon as a Value exists.
*/
package diff

// Value is a node in a recorded computation. Data holds the forward result
// and Grad is filled in by Tape.Backward.
//
// Data is not copied by the constructors and must not be modified once the
// Value has been used as the input of an operation. A producer may still
// adjust a fresh Value's Data in place (e.g. to round outputs) before
// handing it on: no operation's backward pass reads its own output Data, so
// such adjustments cannot perturb gradients.
type Value struct {
	Data []float64
	Grad []float64

	tape *Tape
	back func()
}

// Tape records Values in creation order. Since operations can only consume
// Values that already exist, creation order is a valid topological order of
// the computation.
type Tape struct {
	nodes []*Value
}

func NewTape() *Tape {
	return &Tape{}
}

// node wraps data in a Value and appends it to the tape.
func (t *Tape) node(data []float64) *Value {
	v := &Value{
		Data: data,
		Grad: make([]float64, len(data)),
		tape: t,
	}
	t.nodes = append(t.nodes, v)
	return v
}

// Var creates a leaf Value whose gradient will be computed by Backward.
func (t *Tape) Var(data []float64) *Value {
	return t.node(data)
}

// Const creates a leaf Value which the caller does not intend to
// differentiate with respect to. It behaves identically to Var: the name
// only records intent.
func (t *Tape) Const(data []float64) *Value {
	return t.node(data)
}

// Tape returns the Tape the Value is recorded on.
func (v *Value) Tape() *Tape {
	return v.tape
}

// Backward computes the gradient of root with respect to every Value on the
// tape. Every element of root's gradient is seeded with 1, so for a
// length-1 root (e.g. the output of Sum) the Grad fields hold ordinary
// derivatives, and for longer roots they hold the gradient of the sum of
// root's elements.
//
// Backward may be called repeatedly on the same tape; gradients are zeroed
// before each pass.
func (t *Tape) Backward(root *Value) {
	if root.tape != t {
		panic("Value passed to Backward() belongs to a different Tape.")
	}

	for _, n := range t.nodes {
		for i := range n.Grad {
			n.Grad[i] = 0
		}
	}
	for i := range root.Grad {
		root.Grad[i] = 1
	}

	// Nodes recorded after root cannot contribute to it and carry zero
	// gradient, so running every closure in reverse order is safe.
	for i := len(t.nodes) - 1; i >= 0; i-- {
		if t.nodes[i].back != nil {
			t.nodes[i].back()
		}
	}
}

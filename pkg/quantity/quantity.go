// Package quantity attaches dimensions to numeric payloads.
//
// Measure[T, D] carries its dimension as the phantom type D, so assigning,
// adding or subtracting measures of different dimension types does not
// compile. Products and quotients produce a Quantity[T], whose unit is a
// value; As converts it back to a Measure after checking equivalence at run
// time. The unitguard vet command proves most of those conversions statically.
package quantity

import (
	"fmt"

	"github.com/funvibe/unitguard/pkg/dimension"
)

// Quantity is a payload tagged with a unit known only at run time.
type Quantity[T Number] struct {
	value T
	unit  dimension.Unit
}

// New pairs v with u.
func New[T Number](v T, u dimension.Unit) Quantity[T] {
	return Quantity[T]{value: v, unit: u}
}

func (q Quantity[T]) Value() T { return q.value }

func (q Quantity[T]) Unit() dimension.Unit { return q.unit }

// Add sums two quantities of equivalent dimension. The result keeps q's unit.
func (q Quantity[T]) Add(o Quantity[T]) (Quantity[T], error) {
	if err := dimension.CheckEquivalent("add", q.unit, o.unit); err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: q.value + o.value, unit: q.unit}, nil
}

// Sub subtracts two quantities of equivalent dimension.
func (q Quantity[T]) Sub(o Quantity[T]) (Quantity[T], error) {
	if err := dimension.CheckEquivalent("subtract", q.unit, o.unit); err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: q.value - o.value, unit: q.unit}, nil
}

func (q Quantity[T]) Mul(o Quantity[T]) Quantity[T] {
	return Quantity[T]{value: q.value * o.value, unit: dimension.Multiply(q.unit, o.unit)}
}

func (q Quantity[T]) Div(o Quantity[T]) Quantity[T] {
	return Quantity[T]{value: q.value / o.value, unit: dimension.Divide(q.unit, o.unit)}
}

// Inv returns the reciprocal. Integer payloads use integer division.
func (q Quantity[T]) Inv() Quantity[T] {
	return Quantity[T]{value: 1 / q.value, unit: dimension.Invert(q.unit)}
}

// Scale multiplies the payload by a dimensionless factor.
func (q Quantity[T]) Scale(k T) Quantity[T] {
	return Quantity[T]{value: q.value * k, unit: q.unit}
}

// Assign overwrites q with o when both have equivalent dimensions. q keeps
// its own unit representation.
func (q *Quantity[T]) Assign(o Quantity[T]) error {
	if err := dimension.CheckEquivalent("assign", q.unit, o.unit); err != nil {
		return err
	}
	q.value = o.value
	return nil
}

func (q *Quantity[T]) AddAssign(o Quantity[T]) error {
	if err := dimension.CheckEquivalent("add", q.unit, o.unit); err != nil {
		return err
	}
	q.value += o.value
	return nil
}

func (q *Quantity[T]) SubAssign(o Quantity[T]) error {
	if err := dimension.CheckEquivalent("subtract", q.unit, o.unit); err != nil {
		return err
	}
	q.value -= o.value
	return nil
}

func (q Quantity[T]) String() string {
	if q.unit.IsDimensionless() {
		return fmt.Sprint(q.value)
	}
	return fmt.Sprintf("%v [%s]", q.value, q.unit)
}

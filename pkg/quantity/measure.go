package quantity

import (
	"fmt"
	"reflect"

	"github.com/funvibe/unitguard/pkg/dimension"
)

// Dimension is implemented by zero-size marker types that name a unit.
// Unit is called on the zero value of the marker, so markers should be
// value types. A pointer marker such as *dim.Length is called through a
// freshly allocated value rather than a nil pointer.
type Dimension interface {
	Unit() dimension.Unit
}

func dimensionUnit[D Dimension]() dimension.Unit {
	var d D
	if t := reflect.TypeFor[D](); t.Kind() == reflect.Pointer {
		d = reflect.New(t.Elem()).Interface().(D)
	}
	return d.Unit()
}

// Measure is a payload whose dimension is fixed by the type D.
type Measure[T Number, D Dimension] struct {
	value T
}

// Of builds a measure of dimension D.
func Of[D Dimension, T Number](v T) Measure[T, D] {
	return Measure[T, D]{value: v}
}

// Value converts back to the raw payload.
func (m Measure[T, D]) Value() T { return m.value }

func (m Measure[T, D]) Unit() dimension.Unit {
	return dimensionUnit[D]()
}

func (m Measure[T, D]) Add(o Measure[T, D]) Measure[T, D] {
	return Measure[T, D]{value: m.value + o.value}
}

func (m Measure[T, D]) Sub(o Measure[T, D]) Measure[T, D] {
	return Measure[T, D]{value: m.value - o.value}
}

func (m Measure[T, D]) Scale(k T) Measure[T, D] {
	return Measure[T, D]{value: m.value * k}
}

func (m Measure[T, D]) Neg() Measure[T, D] {
	return Measure[T, D]{value: -m.value}
}

// Dyn forgets the static dimension.
func (m Measure[T, D]) Dyn() Quantity[T] {
	return Quantity[T]{value: m.value, unit: m.Unit()}
}

func (m Measure[T, D]) String() string {
	return m.Dyn().String()
}

// Mul multiplies two measures. The product's dimension is computed from the
// operands' units.
func Mul[T Number, A, B Dimension](a Measure[T, A], b Measure[T, B]) Quantity[T] {
	return a.Dyn().Mul(b.Dyn())
}

func Div[T Number, A, B Dimension](a Measure[T, A], b Measure[T, B]) Quantity[T] {
	return a.Dyn().Div(b.Dyn())
}

func Inv[T Number, A Dimension](a Measure[T, A]) Quantity[T] {
	return a.Dyn().Inv()
}

// As converts q to a measure of dimension D, failing with a
// *dimension.MismatchError when the units are not equivalent.
func As[D Dimension, T Number](q Quantity[T]) (Measure[T, D], error) {
	if err := dimension.CheckEquivalent("convert", q.unit, dimensionUnit[D]()); err != nil {
		return Measure[T, D]{}, err
	}
	return Measure[T, D]{value: q.value}, nil
}

// MustAs is As for conversions known to be valid; it panics otherwise.
func MustAs[D Dimension, T Number](q Quantity[T]) Measure[T, D] {
	m, err := As[D](q)
	if err != nil {
		panic(fmt.Sprintf("quantity: %v", err))
	}
	return m
}

// MulAs multiplies a and b and converts the product to R.
func MulAs[R Dimension, T Number, A, B Dimension](a Measure[T, A], b Measure[T, B]) (Measure[T, R], error) {
	return As[R](Mul(a, b))
}

// DivAs divides a by b and converts the quotient to R.
func DivAs[R Dimension, T Number, A, B Dimension](a Measure[T, A], b Measure[T, B]) (Measure[T, R], error) {
	return As[R](Div(a, b))
}

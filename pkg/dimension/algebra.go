package dimension

// Multiply is the dimension of a product.
func Multiply(a, b Unit) Unit { return Add(a, b) }

// Divide is the dimension of a quotient.
func Divide(a, b Unit) Unit { return Subtract(a, b) }

// Invert is the dimension of a reciprocal.
func Invert(a Unit) Unit { return Negate(a) }

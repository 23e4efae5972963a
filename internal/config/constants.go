package config

// ModulePath is the import path of this module.
const ModulePath = "github.com/funvibe/unitguard"

// Import paths referenced by generated code.
const (
	DimensionImportPath = ModulePath + "/pkg/dimension"
	QuantityImportPath  = ModulePath + "/pkg/quantity"
	DimPackagePath      = ModulePath + "/pkg/dim"
)

// ConfigFileNames are the recognized catalog file names, in lookup order.
var ConfigFileNames = []string{"unitguard.yaml", "unitguard.yml"}

// Generator defaults
const (
	DefaultPackage    = "dim"
	DefaultOutputFile = "dimensions_gen.go"
	GeneratedHeader   = "// Code generated by unitguard gen; DO NOT EDIT."
)

// ReservedNames are exported identifiers package dim declares next to the
// generated file. Generated unexported names (table, unitX) cannot clash
// with exported dimension names.
var ReservedNames = []string{"Lookup", "Names"}

// Built-in dimension names
const (
	ScalarName = "Scalar"
	// MeasureAliasSuffix names the quantity alias emitted for every dimension
	// (Length -> LengthOf[T]).
	MeasureAliasSuffix = "Of"
)

// Symbols the static checker recognizes in package quantity.
const (
	MeasureTypeName = "Measure"
	MulFuncName     = "Mul"
	DivFuncName     = "Div"
	InvFuncName     = "Inv"
	AsFuncName      = "As"
	MustAsFuncName  = "MustAs"
	MulAsFuncName   = "MulAs"
	DivAsFuncName   = "DivAs"
	DynMethodName   = "Dyn"
)

package types

// Unit is the type with exactly one value.  It is used where an operation
// must produce a result but no result is meaningful, such as a lazy.Lazy
// evaluated purely for its side effect.
type Unit struct{}

// UnitValue is the sole value of Unit.
var UnitValue = Unit{}

func (Unit) String() string {
	return "()"
}

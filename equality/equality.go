/*
Package equality adapts lambdas into equality comparers, for collections and
caches that are parameterized on how elements compare.
*/
package equality

// Comparer determines whether two values of the same type are equal.
type Comparer[T any] interface {
	Equal(a, b T) bool
}

// ComparerFunc is a function type that implements Comparer.
type ComparerFunc[T any] func(a, b T) bool

func (f ComparerFunc[T]) Equal(a, b T) bool {
	return f(a, b)
}

// By produces a Comparer that considers two values equal when the given key
// selector maps them to the same key.
func By[T any, K comparable](key func(T) K) Comparer[T] {
	return ComparerFunc[T](func(a, b T) bool {
		return key(a) == key(b)
	})
}

// Natural returns a Comparer backed by the == operator.
func Natural[T comparable]() Comparer[T] {
	return ComparerFunc[T](func(a, b T) bool {
		return a == b
	})
}

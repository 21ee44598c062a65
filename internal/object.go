package internal

// Object is a runtime value: rillBool, rillNull, rillNumber, rillString or
// a callable
type Object interface {
	String() string
}

// truthy is false only for null and false
func truthy(value Object) bool {
	switch v := value.(type) {
	case rillNull:
		return false
	case rillBool:
		return bool(v)
	}
	return true
}

// objectsEqual compares values of the same variant, values of different
// variants are never equal
func objectsEqual(left, right Object) bool {
	switch l := left.(type) {
	case rillNull:
		_, ok := right.(rillNull)
		return ok
	case rillBool:
		r, ok := right.(rillBool)
		return ok && l == r
	case rillNumber:
		r, ok := right.(rillNumber)
		return ok && l == r
	case rillString:
		r, ok := right.(rillString)
		return ok && l == r
	case callable:
		r, ok := right.(callable)
		return ok && l == r
	}
	return false
}

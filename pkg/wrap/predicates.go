package wrap

// Defined reports whether w holds anything other than Absent.
func Defined(w Wrapper) bool {
	return w != nil && w.Kind() != KindAbsent
}

// Scalar reports whether w holds a boolean, number, text or callable.
func Scalar(w Wrapper) bool {
	return w != nil && w.Kind().IsScalar()
}

// Numeric reports whether w holds a number or a text that parses as one.
func Numeric(w Wrapper) bool {
	if w == nil {
		return false
	}
	switch v := w.(type) {
	case *Number:
		return true
	case *Text:
		_, ok := parseNumeric(v.value)
		return ok
	default:
		return false
	}
}

// Empty reports whether w holds nothing, an empty text or an empty collection.
func Empty(w Wrapper) bool {
	switch v := w.(type) {
	case nil, *Absent:
		return true
	case *Collection:
		return v.IsEmpty()
	case *Text:
		return v.IsEmpty()
	default:
		return !Truthy(w.Get())
	}
}

// KindOf returns a check that holds for wrappers of kind k.
func KindOf(k Kind) func(Wrapper) bool {
	return func(w Wrapper) bool {
		return w != nil && w.Kind() == k
	}
}

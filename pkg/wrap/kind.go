package wrap

// Kind identifies the variant held by a Wrapper.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindCollection
	KindBoolean
	KindNumber
	KindCallable
	KindObject
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindCollection:
		return "collection"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindCallable:
		return "callable"
	case KindObject:
		return "object"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// IsScalar reports whether the kind holds a single scalar payload.
func (k Kind) IsScalar() bool {
	switch k {
	case KindBoolean, KindNumber, KindText, KindCallable:
		return true
	default:
		return false
	}
}

// Package wrap classifies arbitrary Go values into a closed set of variants
// and wraps each one in an adapter exposing a common contract.
//
// Variants: Absent, Collection, Boolean, Number, Callable, Object, Text.
// Every wrapper can be unwrapped with Get, rendered with ToString, ToJSON and
// Visualize, and carries a tri-state assertion (Unknown, True, False) that
// drives conditional chaining.
//
// Key operations:
// - Wrap/WrapRaw: classify a raw value, or copy an existing wrapper
// - Unwrap/UnwrapMany: leave the wrapper world again
// - Is/Not/AndIs/AndNot: set the assertion state from a check
// - OnSuccess/OnFailure: continue a chain depending on that state
//
// Collection is the only mutable variant. It keeps an insertion-ordered map
// of int or string keys, one shared cursor, and the higher-order traversal
// helpers (Map, Filter, Reduce, Flatten, SearchRecursive, Walk).
//
// A Collection is not safe for concurrent use.
package wrap

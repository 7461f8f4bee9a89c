package enums

// ThingKind is the "kind" discriminant Reddit puts on every listing child.
type ThingKind string

const (
	KindComment ThingKind = "t1"
	KindLink    ThingKind = "t3"

	// KindMore is a "load more comments" stub interleaved with real comments.
	KindMore ThingKind = "more"
)

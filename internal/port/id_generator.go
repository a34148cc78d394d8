package port

type IDGenerator interface {
	// NewID returns an opaque identifier not returned before
	NewID() string
}

package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Sim is the contract the viewer drives: a grid process that advances one
// step at a time until it reports Done.
type Sim interface {
	Name() string
	Size() Size
	// Reset rewinds to the start. A zero seed means the sim's configured seed,
	// so 0 itself is only reachable by configuring it.
	Reset(seed int64)
	// Step advances by one step. It returns an error when the run failed;
	// after that Done reports true.
	Step() error
	Done() bool
	Cells() []uint8
}

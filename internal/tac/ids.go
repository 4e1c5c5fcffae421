package tac

// IDs allocates temporary and label numbers for one compilation unit.
// Temporaries start at 0, labels at 1 (0 means "fall through" for Jumping).
// The zero value is ready to use.
type IDs struct {
	temps  uint64
	labels uint64
}

// NewIDs returns a fresh allocator.
func NewIDs() *IDs { return &IDs{} }

// NextTemp returns the next temporary id.
func (a *IDs) NextTemp() uint64 {
	id := a.temps
	a.temps++
	return id
}

// NextLabel returns the next label id.
func (a *IDs) NextLabel() uint64 {
	a.labels++
	return a.labels
}

// Temps reports how many temporaries were handed out.
func (a *IDs) Temps() uint64 { return a.temps }

// Labels reports how many labels were handed out.
func (a *IDs) Labels() uint64 { return a.labels }

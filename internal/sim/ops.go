// internal/sim/ops.go
package sim

// Op is one discrete action against a satellite. The set is closed: the
// four variants below are the only transitions the state machine has.
type Op interface {
	isOp()
}

// Rotate points the satellite at the named cardinal direction. The
// direction string is validated by Apply, not by the caller.
type Rotate struct {
	Direction string
}

// ActivatePanels deploys and powers the solar panels.
type ActivatePanels struct{}

// DeactivatePanels stows the solar panels.
type DeactivatePanels struct{}

// CollectData attempts a data-collection pass.
type CollectData struct{}

func (Rotate) isOp()           {}
func (ActivatePanels) isOp()   {}
func (DeactivatePanels) isOp() {}
func (CollectData) isOp()      {}

// Outcome reports whether an operation mutated the satellite. Reason is
// set only on rejection; a rejected operation leaves state unchanged.
type Outcome struct {
	Applied bool
	Reason  string
}

func applied() Outcome { return Outcome{Applied: true} }

func rejected(why string) Outcome { return Outcome{Reason: why} }

// Apply executes a single operation. It never panics and never returns an
// error: invalid input is reported through the Outcome and logged, and the
// satellite is left as it was.
func (s *Satellite) Apply(op Op) Outcome {
	switch op := op.(type) {
	case Rotate:
		return s.rotate(op.Direction)
	case ActivatePanels:
		return s.activatePanels()
	case DeactivatePanels:
		return s.deactivatePanels()
	case CollectData:
		return s.collectData()
	default:
		return rejected("unsupported operation")
	}
}

package rental

// Status is the rental lifecycle state. Reserved rentals move forward to
// active and finished as time passes, or sideways to cancelled; none of the
// three terminal-side states ever returns to reserved.
type Status string

const (
	StatusReserved  Status = "reserved"
	StatusActive    Status = "active"
	StatusFinished  Status = "finished"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusActive, StatusFinished, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the lifecycle permits moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusReserved:
		return next == StatusActive || next == StatusCancelled
	case StatusActive:
		return next == StatusFinished
	default:
		return false
	}
}

package vehicle

// Status is the display state shown on the fleet board. It is informational:
// the booking scheduler decides conflicts from rental rows, never from this
// field.
type Status string

const (
	StatusFree        Status = "free"
	StatusReserved    Status = "reserved"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusFree, StatusReserved, StatusOccupied, StatusMaintenance:
		return true
	default:
		return false
	}
}

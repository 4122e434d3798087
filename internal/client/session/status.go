package session

// Status is the lifecycle tag of the session. Pending only exists between
// process start and the end of rehydration.
type Status int

const (
	Pending Status = iota
	Anonymous
	Authenticated
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

package transaction

import "fmt"

// Status is the lifecycle state of a transaction.
type Status string

const (
	// StatusPending is a transaction awaiting settlement. Pending
	// transactions can be cancelled.
	StatusPending Status = "pending"
	// StatusCompleted is a settled transaction. Terminal.
	StatusCompleted Status = "completed"
	// StatusFailed is a transaction rejected by the banking network.
	// Failed transactions can be retried.
	StatusFailed Status = "failed"
	// StatusCancelled is a transaction cancelled by the user. Terminal.
	StatusCancelled Status = "cancelled"
)

// statusLabels is the single source of display labels. Export and the API
// layer both read it through Label; keeping one map avoids the label
// divergence the dashboard previously suffered from.
var statusLabels = map[Status]string{
	StatusPending:   "En attente",
	StatusCompleted: "Complété",
	StatusFailed:    "Échoué",
	StatusCancelled: "Annulé",
}

// Valid reports whether s is one of the four lifecycle states.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the localized display label for the status.
func (s Status) Label() string {
	return statusLabels[s]
}

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown transaction status %q", raw)
	}
	return s, nil
}

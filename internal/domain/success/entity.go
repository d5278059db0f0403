package success

import (
	"time"

	"jobboard/internal/domain/ids"
)

// Story records that a citizen found employment, optionally crediting the
// service and carrying a free-text account of how it happened.
type Story struct {
	ID         ids.SuccessID
	CitizenID  ids.CitizenID
	RecordedOn time.Time
	FromHere   bool
	Story      string
}

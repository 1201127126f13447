package quota

import "errors"

// ErrQuotaExhausted is returned when a user has no planning credits left for
// the current month.
var ErrQuotaExhausted = errors.New("monthly plan quota exhausted")

// DefaultCredits is the number of planning credits granted per month. Every
// chat turn costs one credit, charged before the turn runs so an exhausted
// user never reaches the planner.
const DefaultCredits = 200

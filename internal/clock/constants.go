package clock

import "time"

// DefaultCloseInterval matches a typical ledger close time
const DefaultCloseInterval = 5 * time.Second

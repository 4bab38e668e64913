package domain

import (
	"time"

	"github.com/spendlyhq/spendly/pkg/idx"
)

// Conversation is one exchange with the finance assistant, persisted so the
// UI can show chat history. Old conversations are pruned by housekeeping.
type Conversation struct {
	ID      idx.ID
	UserID  idx.ID
	Message string
	Reply   string

	CreatedAt time.Time
}

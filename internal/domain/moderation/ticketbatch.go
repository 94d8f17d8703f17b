package moderation

import (
	"fmt"
	"time"
)

// TicketBatch records that an agent closed Count support tickets. Totals
// are a sum over batches; individual tickets are never stored.
type TicketBatch struct {
	ID        int64
	AgentID   string
	AgentName string
	Count     int
	Timestamp time.Time
}

func NewTicketBatch(agentID, agentName string, count int, timestamp time.Time) (TicketBatch, error) {
	if agentID == "" {
		return TicketBatch{}, fmt.Errorf("agent ID is required")
	}
	if count < 1 {
		count = 1
	}
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}
	return TicketBatch{
		AgentID:   agentID,
		AgentName: agentName,
		Count:     count,
		Timestamp: timestamp,
	}, nil
}

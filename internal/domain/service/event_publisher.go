package service

import (
	"context"
	"time"

	"cashless/internal/domain/entity"
)

// BalanceChangedEvent is emitted once for every committed transaction.
type BalanceChangedEvent struct {
	RequestID     string           `json:"request_id,omitempty"` // For distributed tracing
	AccountID     string           `json:"account_id"`
	TransactionID string           `json:"transaction_id"`
	Total         int64            `json:"total"`
	BeforeCredit  int64            `json:"before_credit"`
	AfterCredit   int64            `json:"after_credit"`
	StampsAfter   map[string]int64 `json:"stamps_after,omitempty"`
	OccurredAt    time.Time        `json:"occurred_at"`
}

// NewBalanceChangedEvent builds the event for a committed transaction.
func NewBalanceChangedEvent(tx *entity.Transaction) *BalanceChangedEvent {
	stamps := make(map[string]int64, len(tx.StampsAfter))
	for t, v := range tx.StampsAfter {
		stamps[string(t)] = v
	}

	return &BalanceChangedEvent{
		AccountID:     tx.AccountID.String(),
		TransactionID: tx.ID.String(),
		Total:         tx.Total,
		BeforeCredit:  tx.BeforeCredit,
		AfterCredit:   tx.AfterCredit,
		StampsAfter:   stamps,
		OccurredAt:    tx.CreatedAt,
	}
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBalanceChanged announces a committed transaction to downstream consumers
	// (wallet passes, mail reports). Delivery is best effort.
	PublishBalanceChanged(ctx context.Context, event *BalanceChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

package utils

import (
	"sync"
	"time"
)

// SessionStats represents the current state of the invoicing session.
type SessionStats struct {
	Status       string    `json:"status"`
	InvoiceCount int       `json:"invoiceCount"`
	StartedAt    time.Time `json:"startedAt"`
	CheckedAt    time.Time `json:"checkedAt"`
}

// InvoiceCounter reports how many invoices exist in the session.
type InvoiceCounter interface {
	Count() int
}

var (
	currentStats SessionStats
	mu           sync.RWMutex
)

// GetSessionStats returns the latest stored session snapshot.
func GetSessionStats() SessionStats {
	mu.RLock()
	defer mu.RUnlock()
	return currentStats
}

// StartSessionMonitor seeds the session snapshot and refreshes it
// periodically from the invoice store.
func StartSessionMonitor(counter InvoiceCounter) {
	startedAt := time.Now()

	mu.Lock()
	currentStats = SessionStats{
		Status:    "ok",
		StartedAt: startedAt,
		CheckedAt: startedAt,
	}
	mu.Unlock()

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			mu.Lock()
			currentStats = SessionStats{
				Status:       "ok",
				InvoiceCount: counter.Count(),
				StartedAt:    startedAt,
				CheckedAt:    time.Now(),
			}
			mu.Unlock()
		}
	}()
}

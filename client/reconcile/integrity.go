package reconcile

import (
	"fmt"
	"time"

	"github.com/cbodonnell/lanes/pkg/log"
	"github.com/cbodonnell/lanes/pkg/renderstate"
)

const (
	// DefaultReportInterval is how often the integrity signature is sent to the server
	DefaultReportInterval = 5 * time.Second
)

// StateHashSender sends the integrity signature to the server.
type StateHashSender interface {
	SendStateHash(hash int32) error
}

// IntegrityReporter periodically reports the store's integrity signature.
type IntegrityReporter struct {
	store      *renderstate.Store
	sender     StateHashSender
	interval   time.Duration
	lastReport time.Time
}

func NewIntegrityReporter(store *renderstate.Store, sender StateHashSender, interval time.Duration) *IntegrityReporter {
	if interval <= 0 {
		interval = DefaultReportInterval
	}
	return &IntegrityReporter{
		store:    store,
		sender:   sender,
		interval: interval,
	}
}

// Update sends the signature if the interval has passed since the last report.
// It returns true if a report was sent.
func (r *IntegrityReporter) Update(now time.Time) (bool, error) {
	if !r.lastReport.IsZero() && now.Sub(r.lastReport) < r.interval {
		return false, nil
	}
	r.lastReport = now

	signature := r.store.IntegritySignature()
	if err := r.sender.SendStateHash(signature); err != nil {
		return false, fmt.Errorf("failed to send state hash: %v", err)
	}
	log.Trace("Reported integrity signature %d", signature)
	return true, nil
}

// Reset makes the next Update report immediately.
func (r *IntegrityReporter) Reset() {
	r.lastReport = time.Time{}
}

package service

import (
	"context"
	"time"
)

// PaymentItem describes what is being charged.
type PaymentItem struct {
	Type        string
	Name        string
	Description string
	Price       int
}

// PaymentProcessor is the seam for a real payment gateway. The platform
// only ships the simulated implementation; anything real plugs in here.
type PaymentProcessor interface {
	Process(ctx context.Context, userID string, item PaymentItem) error
}

type simulatedProcessor struct {
	delay time.Duration
}

// NewSimulatedProcessor returns a processor that waits for the configured
// delay and then reports success, mimicking a gateway round trip.
func NewSimulatedProcessor(delay time.Duration) PaymentProcessor {
	return &simulatedProcessor{delay: delay}
}

func (p *simulatedProcessor) Process(ctx context.Context, userID string, item PaymentItem) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.delay):
		return nil
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimulatedProcessor_SucceedsAfterDelay(t *testing.T) {
	p := NewSimulatedProcessor(10 * time.Millisecond)

	err := p.Process(context.Background(), "u-1", PaymentItem{Type: "Subscription", Price: 849})

	assert.NoError(t, err)
}

func TestSimulatedProcessor_RespectsContextCancel(t *testing.T) {
	p := NewSimulatedProcessor(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := p.Process(ctx, "u-1", PaymentItem{Type: "Subscription", Price: 849})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

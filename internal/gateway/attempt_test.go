package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttempt_ResolvesOnce(t *testing.T) {
	a := newAttempt("a1", Request{})

	assert.True(t, a.Resolve(entities.Succeeded("pay", "order", "sig")))
	assert.False(t, a.Resolve(entities.Cancelled()))

	outcome, err := a.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, outcome.IsSuccess())
}

func TestAttempt_WaitHonoursContext(t *testing.T) {
	a := newAttempt("a1", Request{})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := a.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, a.Resolved())
}

func TestAttempt_Claim(t *testing.T) {
	a := newAttempt("a1", Request{})
	assert.True(t, a.claim())
	assert.False(t, a.claim())
}

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHoldStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, HoldStatusActive.CanTransitionTo(HoldStatusExpired))
	assert.True(t, HoldStatusActive.CanTransitionTo(HoldStatusConsumed))

	// 終態不能再轉換
	assert.False(t, HoldStatusExpired.CanTransitionTo(HoldStatusActive))
	assert.False(t, HoldStatusExpired.CanTransitionTo(HoldStatusConsumed))
	assert.False(t, HoldStatusConsumed.CanTransitionTo(HoldStatusExpired))
}

func TestHold_Expired(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	hold := &Hold{
		CreatedAt:  created,
		TTLSeconds: 60,
		ExpiresAt:  created.Add(time.Minute),
		Status:     HoldStatusActive,
	}

	assert.False(t, hold.Expired(created.Add(59*time.Second)))
	// expires_at <= now 即過期
	assert.True(t, hold.Expired(created.Add(time.Minute)))
	assert.True(t, hold.Expired(created.Add(61*time.Second)))
}

func TestPurchaseStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, PurchaseStatusActive.CanTransitionTo(PurchaseStatusCancelled))
	assert.False(t, PurchaseStatusCancelled.CanTransitionTo(PurchaseStatusActive))
	assert.False(t, PurchaseStatusCancelled.CanTransitionTo(PurchaseStatusCancelled))
}

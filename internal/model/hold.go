package model

import "time"

// HoldStatus 保留狀態類型
type HoldStatus string

const (
	HoldStatusActive   HoldStatus = "ACTIVE"
	HoldStatusExpired  HoldStatus = "EXPIRED"
	HoldStatusConsumed HoldStatus = "CONSUMED"
)

// IsValid 驗證狀態是否有效
func (s HoldStatus) IsValid() bool {
	switch s {
	case HoldStatusActive, HoldStatusExpired, HoldStatusConsumed:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s HoldStatus) CanTransitionTo(target HoldStatus) bool {
	transitions := map[HoldStatus][]HoldStatus{
		HoldStatusActive:   {HoldStatusExpired, HoldStatusConsumed},
		HoldStatusExpired:  {},
		HoldStatusConsumed: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Hold 座位保留紀錄：客戶對一組座位的限時獨佔。
// 到達終態（EXPIRED / CONSUMED）後保留供稽核，不會被刪除。
type Hold struct {
	ID         string     `json:"id"`
	FlightID   string     `json:"flight_id"`
	Customer   string     `json:"customer"`
	Seats      []string   `json:"seats"`
	CreatedAt  time.Time  `json:"created_at"`
	TTLSeconds int64      `json:"ttl_seconds"`
	ExpiresAt  time.Time  `json:"expires_at"`
	Status     HoldStatus `json:"status"`
}

// Expired 判斷保留是否已過期（expires_at <= now）
func (h *Hold) Expired(now time.Time) bool {
	return !h.ExpiresAt.After(now)
}

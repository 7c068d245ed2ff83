package model

import "time"

// PurchaseStatus 購買狀態類型
type PurchaseStatus string

const (
	PurchaseStatusActive    PurchaseStatus = "ACTIVE"
	PurchaseStatusCancelled PurchaseStatus = "CANCELLED"
)

// IsValid 驗證狀態是否有效
func (s PurchaseStatus) IsValid() bool {
	switch s {
	case PurchaseStatusActive, PurchaseStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s PurchaseStatus) CanTransitionTo(target PurchaseStatus) bool {
	// CANCELLED 是終態，不能再轉換
	return s == PurchaseStatusActive && target == PurchaseStatusCancelled
}

// Purchase 購買紀錄，由 CONSUMED 的 hold 轉換而來。
// 取消後狀態轉為 CANCELLED，座位釋回，但紀錄保留。
type Purchase struct {
	ID          string         `json:"id"`
	HoldID      string         `json:"hold_id"`
	FlightID    string         `json:"flight_id"`
	Customer    string         `json:"customer"`
	Seats       []string       `json:"seats"`
	PurchasedAt time.Time      `json:"purchased_at"`
	Status      PurchaseStatus `json:"status"`
}

package model

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "airline-reservation/pkg/app_errors"
)

// SeatStatus 座位狀態類型
type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "AVAILABLE"
	SeatStatusHold      SeatStatus = "HOLD"
	SeatStatusPurchased SeatStatus = "PURCHASED"
)

// IsValid 驗證狀態是否有效
func (s SeatStatus) IsValid() bool {
	switch s {
	case SeatStatusAvailable, SeatStatusHold, SeatStatusPurchased:
		return true
	}
	return false
}

// SeatLetters 每排固定 A-F 六個座位
var SeatLetters = []string{"A", "B", "C", "D", "E", "F"}

// DefaultSeatRows 預設排數，24 排 x 6 = 144 席
const DefaultSeatRows = 24

// Seat 單一座位：狀態加上佔用紀錄（hold 或 purchase 的 id）。
// 不變式：Status == AVAILABLE 時 Ref 必為空，反之必須非空。
type Seat struct {
	Status SeatStatus `json:"status"`
	Ref    string     `json:"ref,omitempty"`
}

// SeatMap 航班座位表。純資料結構，狀態轉換的合法性由 ledger 負責，
// 這裡只做座位代碼的格式與範圍檢查。
type SeatMap struct {
	Rows  int             `json:"rows"`
	Seats map[string]Seat `json:"seats"`
}

func NewSeatMap(rows int) *SeatMap {
	seats := make(map[string]Seat, rows*len(SeatLetters))
	for r := 1; r <= rows; r++ {
		for _, letter := range SeatLetters {
			seats[fmt.Sprintf("%d%s", r, letter)] = Seat{Status: SeatStatusAvailable}
		}
	}
	return &SeatMap{Rows: rows, Seats: seats}
}

// NormalizeSeat 整理使用者輸入的座位代碼（去空白、轉大寫）
func NormalizeSeat(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Contains 檢查座位代碼是否落在本機型的格子內
func (m *SeatMap) Contains(code string) bool {
	_, ok := m.Seats[code]
	return ok
}

// State 回傳座位目前狀態，代碼不在格子內回傳 ErrInvalidSeat
func (m *SeatMap) State(code string) (SeatStatus, error) {
	seat, ok := m.Seats[code]
	if !ok {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidSeat, code)
	}
	return seat.Status, nil
}

// Ref 回傳佔用此座位的紀錄 id（AVAILABLE 時為空字串）
func (m *SeatMap) Ref(code string) (string, error) {
	seat, ok := m.Seats[code]
	if !ok {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidSeat, code)
	}
	return seat.Ref, nil
}

// SetState 更新座位狀態與佔用紀錄。AVAILABLE 會強制清空 Ref，
// 非 AVAILABLE 則必須帶上紀錄 id。
func (m *SeatMap) SetState(code string, status SeatStatus, ref string) error {
	if _, ok := m.Seats[code]; !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidSeat, code)
	}
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidRequest, status)
	}
	if status == SeatStatusAvailable {
		ref = ""
	} else if ref == "" {
		return fmt.Errorf("%w: %s requires an occupying record", apperrors.ErrInvalidRequest, status)
	}
	m.Seats[code] = Seat{Status: status, Ref: ref}
	return nil
}

// ListByState 依 row-major 順序（第 1 排到第 N 排，每排 A 到 F）
// 列出指定狀態的座位。掃描順序固定，自動配位才能有確定性。
func (m *SeatMap) ListByState(status SeatStatus) []string {
	var codes []string
	for r := 1; r <= m.Rows; r++ {
		for _, letter := range SeatLetters {
			code := strconv.Itoa(r) + letter
			if seat, ok := m.Seats[code]; ok && seat.Status == status {
				codes = append(codes, code)
			}
		}
	}
	return codes
}

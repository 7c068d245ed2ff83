package ledger

import (
	"time"

	"airline-reservation/internal/model"
)

// SweepExpired 回收所有到期的保留（expires_at <= now）：
// 狀態轉 EXPIRED、座位釋回 AVAILABLE。沒有背景計時器，
// 這是保留被回收的唯一機制，每個對外操作前都會跑一次。
// 重入安全，連續呼叫不會產生額外變化。回傳本次處理的筆數。
func (l *Ledger) SweepExpired(now time.Time) int {
	expired := 0
	for _, hold := range l.st.Holds {
		if hold.Status != model.HoldStatusActive {
			continue
		}
		if !hold.Expired(now) {
			continue
		}
		l.expireHold(hold)
		expired++
	}
	return expired
}

// expireHold 單筆過期轉換，PurchaseHold 的 lazy check 也走這裡
func (l *Ledger) expireHold(hold *model.Hold) {
	seatMap, ok := l.st.SeatMaps[hold.FlightID]
	if ok {
		for _, code := range hold.Seats {
			// 只釋放仍然掛在這筆 hold 上的座位
			seat, exists := seatMap.Seats[code]
			if exists && seat.Status == model.SeatStatusHold && seat.Ref == hold.ID {
				_ = seatMap.SetState(code, model.SeatStatusAvailable, "")
			}
		}
	}
	hold.Status = model.HoldStatusExpired
}

package ledger

import (
	"fmt"
	"time"

	"airline-reservation/internal/model"
	apperrors "airline-reservation/pkg/app_errors"

	"github.com/google/uuid"
)

// Ledger 對載入後的 State 執行訂位狀態機：
// 建立保留、轉購買、取消、過期回收。
// 所有操作都吃明確的 now，過期判斷才能在測試裡重現。
type Ledger struct {
	st *model.State
}

func New(st *model.State) *Ledger {
	return &Ledger{st: st}
}

// newRecordID 產生不可預測的紀錄 id，例如 H-3f9c02d1ba
func newRecordID(prefix string) string {
	u := uuid.New()
	return fmt.Sprintf("%s-%x", prefix, u[:5])
}

// CreateHold 建立保留。指定座位走 all-or-nothing：先全部驗證完
// 才動任何座位，任一座位不可用就整筆失敗、狀態不留痕跡。
// 自動配位依 row-major 順序取前 N 個 AVAILABLE 座位。
func (l *Ledger) CreateHold(req model.CreateHoldRequest, now time.Time) (*model.Hold, error) {
	if len(req.Seats) > 0 && req.Count > 0 {
		return nil, fmt.Errorf("%w: use seats or count, not both", apperrors.ErrInvalidRequest)
	}
	if len(req.Seats) == 0 && req.Count <= 0 {
		return nil, fmt.Errorf("%w: must provide seats or count", apperrors.ErrInvalidRequest)
	}
	if req.TTL <= 0 {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidTTL, req.TTL)
	}

	seatMap, err := l.st.SeatMap(req.FlightID)
	if err != nil {
		return nil, err
	}

	var requested []string
	if len(req.Seats) > 0 {
		seen := make(map[string]bool, len(req.Seats))
		for _, raw := range req.Seats {
			code := model.NormalizeSeat(raw)
			if code == "" {
				return nil, fmt.Errorf("%w: empty seat code", apperrors.ErrInvalidSeat)
			}
			if seen[code] {
				return nil, fmt.Errorf("%w: duplicate seat %s", apperrors.ErrInvalidRequest, code)
			}
			seen[code] = true
			requested = append(requested, code)
		}

		for _, code := range requested {
			status, err := seatMap.State(code)
			if err != nil {
				return nil, err
			}
			if status != model.SeatStatusAvailable {
				return nil, fmt.Errorf("%w: %s (status=%s)", apperrors.ErrSeatUnavailable, code, status)
			}
		}
	} else {
		available := seatMap.ListByState(model.SeatStatusAvailable)
		if len(available) < req.Count {
			return nil, fmt.Errorf("%w: requested=%d available=%d",
				apperrors.ErrInsufficientSeats, req.Count, len(available))
		}
		requested = available[:req.Count]
	}

	hold := &model.Hold{
		ID:         newRecordID("H"),
		FlightID:   req.FlightID,
		Customer:   req.Customer,
		Seats:      requested,
		CreatedAt:  now,
		TTLSeconds: int64(req.TTL.Seconds()),
		ExpiresAt:  now.Add(req.TTL),
		Status:     model.HoldStatusActive,
	}

	for _, code := range requested {
		if err := seatMap.SetState(code, model.SeatStatusHold, hold.ID); err != nil {
			return nil, err
		}
	}
	l.st.Holds[hold.ID] = hold

	return hold, nil
}

// PurchaseHold 把 ACTIVE 的保留轉成購買。付款在這裡是 stub，
// 只做狀態轉換。已過期但還沒被 sweep 掃到的保留會在這裡被
// 就地標成 EXPIRED 再回錯誤（lazy check，與 sweep 同一套轉換）。
func (l *Ledger) PurchaseHold(holdID string, now time.Time) (*model.Purchase, error) {
	hold, ok := l.st.Holds[holdID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrHoldNotFound, holdID)
	}

	if hold.Status == model.HoldStatusActive && hold.Expired(now) {
		l.expireHold(hold)
	}

	switch hold.Status {
	case model.HoldStatusExpired:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrHoldExpired, holdID)
	case model.HoldStatusConsumed:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrHoldAlreadyConsumed, holdID)
	}

	seatMap, err := l.st.SeatMap(hold.FlightID)
	if err != nil {
		return nil, err
	}

	// 座位應該都還掛在這筆 hold 上，否則狀態已經飄掉了
	for _, code := range hold.Seats {
		ref, err := seatMap.Ref(code)
		if err != nil {
			return nil, err
		}
		if ref != hold.ID {
			return nil, fmt.Errorf("%w: seat %s not held by %s", apperrors.ErrStateCorrupt, code, hold.ID)
		}
	}

	purchase := &model.Purchase{
		ID:          newRecordID("P"),
		HoldID:      hold.ID,
		FlightID:    hold.FlightID,
		Customer:    hold.Customer,
		Seats:       append([]string(nil), hold.Seats...),
		PurchasedAt: now,
		Status:      model.PurchaseStatusActive,
	}

	for _, code := range hold.Seats {
		if err := seatMap.SetState(code, model.SeatStatusPurchased, purchase.ID); err != nil {
			return nil, err
		}
	}
	hold.Status = model.HoldStatusConsumed
	l.st.Purchases[purchase.ID] = purchase

	return purchase, nil
}

// CancelPurchase 取消 ACTIVE 的購買並釋回座位。
// CANCELLED 是終態，不能重複取消也不能復原。
func (l *Ledger) CancelPurchase(purchaseID string) (*model.Purchase, error) {
	purchase, ok := l.st.Purchases[purchaseID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrPurchaseNotFound, purchaseID)
	}
	if !purchase.Status.CanTransitionTo(model.PurchaseStatusCancelled) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrPurchaseAlreadyCancelled, purchaseID)
	}

	seatMap, err := l.st.SeatMap(purchase.FlightID)
	if err != nil {
		return nil, err
	}

	for _, code := range purchase.Seats {
		if err := seatMap.SetState(code, model.SeatStatusAvailable, ""); err != nil {
			return nil, err
		}
	}
	purchase.Status = model.PurchaseStatusCancelled

	return purchase, nil
}

package service

import (
	"time"

	"airline-reservation/internal/ledger"
	"airline-reservation/internal/model"

	"go.uber.org/zap"
)

// ViewSeats 回傳航班座位表的快照（唯讀，但 sweep 可能落盤）
func (s *Service) ViewSeats(flightID string) (*model.SeatMap, error) {
	var snapshot *model.SeatMap
	err := s.run("seats", func(led *ledger.Ledger, st *model.State, now time.Time) (bool, error) {
		seatMap, err := st.SeatMap(flightID)
		if err != nil {
			return false, err
		}
		snapshot = copySeatMap(seatMap)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Hold 建立座位保留
func (s *Service) Hold(req model.CreateHoldRequest) (*model.Hold, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	var hold *model.Hold
	err := s.run("hold", func(led *ledger.Ledger, st *model.State, now time.Time) (bool, error) {
		var err error
		hold, err = led.CreateHold(req, now)
		if err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("hold created",
		zap.String("hold_id", hold.ID),
		zap.String("flight_id", hold.FlightID),
		zap.Strings("seats", hold.Seats),
		zap.Time("expires_at", hold.ExpiresAt))
	return hold, nil
}

// Purchase 把保留轉成購買（付款 stub）
func (s *Service) Purchase(holdID string) (*model.Purchase, error) {
	var purchase *model.Purchase
	err := s.run("purchase", func(led *ledger.Ledger, st *model.State, now time.Time) (bool, error) {
		var err error
		purchase, err = led.PurchaseHold(holdID, now)
		if err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("purchase completed",
		zap.String("purchase_id", purchase.ID),
		zap.String("hold_id", holdID),
		zap.Strings("seats", purchase.Seats))
	return purchase, nil
}

// Cancel 取消購買並釋回座位
func (s *Service) Cancel(purchaseID string) (*model.Purchase, error) {
	var purchase *model.Purchase
	err := s.run("cancel", func(led *ledger.Ledger, st *model.State, now time.Time) (bool, error) {
		var err error
		purchase, err = led.CancelPurchase(purchaseID)
		if err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("purchase cancelled",
		zap.String("purchase_id", purchase.ID),
		zap.Strings("seats", purchase.Seats))
	return purchase, nil
}

// DebugDump 完整狀態快照，開發用
func (s *Service) DebugDump() (*model.State, error) {
	var snapshot *model.State
	err := s.run("debug", func(led *ledger.Ledger, st *model.State, now time.Time) (bool, error) {
		snapshot = st
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func copySeatMap(m *model.SeatMap) *model.SeatMap {
	seats := make(map[string]model.Seat, len(m.Seats))
	for code, seat := range m.Seats {
		seats[code] = seat
	}
	return &model.SeatMap{Rows: m.Rows, Seats: seats}
}

package model

import (
	"fmt"

	apperrors "airline-reservation/pkg/app_errors"
)

// State 單次執行期間的完整訂位狀態。程式啟動時從狀態檔載入、
// 結束前整份寫回，four top-level collections 都以 id 為 key。
type State struct {
	Flights   map[string]*Flight   `json:"flights"`
	SeatMaps  map[string]*SeatMap  `json:"seatMaps"`
	Holds     map[string]*Hold     `json:"holds"`
	Purchases map[string]*Purchase `json:"purchases"`
}

func NewState() *State {
	return &State{
		Flights:   make(map[string]*Flight),
		SeatMaps:  make(map[string]*SeatMap),
		Holds:     make(map[string]*Hold),
		Purchases: make(map[string]*Purchase),
	}
}

// Flight 依 id 查航班
func (s *State) Flight(id string) (*Flight, error) {
	flight, ok := s.Flights[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrFlightNotFound, id)
	}
	return flight, nil
}

// SeatMap 依航班 id 查座位表
func (s *State) SeatMap(flightID string) (*SeatMap, error) {
	seatMap, ok := s.SeatMaps[flightID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrFlightNotFound, flightID)
	}
	return seatMap, nil
}

// AddFlight 同時登錄航班與它的座位表
func (s *State) AddFlight(flight *Flight, seatMap *SeatMap) {
	s.Flights[flight.ID] = flight
	s.SeatMaps[flight.ID] = seatMap
}

// Validate 檢查載入的狀態是否自洽：集合裡不能有 null 項目，
// 每個非 AVAILABLE 座位的 ref 必須指向存在的紀錄且狀態相符，
// 每張座位表要有對應航班。載入時驗證失敗視為狀態檔毀損。
func (s *State) Validate() error {
	// JSON 的 null 項目解析得過，但後續操作會踩到 nil 指標
	for id, flight := range s.Flights {
		if flight == nil {
			return fmt.Errorf("%w: flight %s is null", apperrors.ErrStateCorrupt, id)
		}
	}
	for id, seatMap := range s.SeatMaps {
		if seatMap == nil || seatMap.Seats == nil {
			return fmt.Errorf("%w: seat map for %s is null", apperrors.ErrStateCorrupt, id)
		}
	}
	for id, hold := range s.Holds {
		if hold == nil {
			return fmt.Errorf("%w: hold %s is null", apperrors.ErrStateCorrupt, id)
		}
	}
	for id, purchase := range s.Purchases {
		if purchase == nil {
			return fmt.Errorf("%w: purchase %s is null", apperrors.ErrStateCorrupt, id)
		}
	}

	for flightID := range s.SeatMaps {
		if _, ok := s.Flights[flightID]; !ok {
			return fmt.Errorf("%w: seat map for unknown flight %s", apperrors.ErrStateCorrupt, flightID)
		}
	}
	for flightID := range s.Flights {
		if _, ok := s.SeatMaps[flightID]; !ok {
			return fmt.Errorf("%w: flight %s has no seat map", apperrors.ErrStateCorrupt, flightID)
		}
	}

	for flightID, seatMap := range s.SeatMaps {
		for code, seat := range seatMap.Seats {
			switch seat.Status {
			case SeatStatusAvailable:
				if seat.Ref != "" {
					return fmt.Errorf("%w: available seat %s on %s references %s",
						apperrors.ErrStateCorrupt, code, flightID, seat.Ref)
				}
			case SeatStatusHold:
				hold, ok := s.Holds[seat.Ref]
				if !ok || hold.Status != HoldStatusActive {
					return fmt.Errorf("%w: held seat %s on %s has no active hold %q",
						apperrors.ErrStateCorrupt, code, flightID, seat.Ref)
				}
			case SeatStatusPurchased:
				purchase, ok := s.Purchases[seat.Ref]
				if !ok || purchase.Status != PurchaseStatusActive {
					return fmt.Errorf("%w: purchased seat %s on %s has no active purchase %q",
						apperrors.ErrStateCorrupt, code, flightID, seat.Ref)
				}
			default:
				return fmt.Errorf("%w: seat %s on %s has unknown status %q",
					apperrors.ErrStateCorrupt, code, flightID, seat.Status)
			}
		}
	}
	return nil
}

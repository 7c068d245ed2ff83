package service

import (
	"time"

	"airline-reservation/internal/catalog"
	"airline-reservation/internal/ledger"
	"airline-reservation/internal/model"

	"go.uber.org/zap"
)

// Search 搜尋航班。唯讀委派給 catalog，但照樣先跑過期回收
func (s *Service) Search(req model.SearchRequest) ([]*model.Flight, error) {
	var results []*model.Flight
	err := s.run("search", func(led *ledger.Ledger, st *model.State, now time.Time) (bool, error) {
		results = catalog.Search(st, req)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ListFlights 管理者列出全部航班
func (s *Service) ListFlights() ([]*model.Flight, error) {
	var flights []*model.Flight
	err := s.run("admin-list-flights", func(led *ledger.Ledger, st *model.State, now time.Time) (bool, error) {
		flights = catalog.ListFlights(st)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return flights, nil
}

// AddFlight 管理者新增航班。未指定排數時用設定檔的預設值
func (s *Service) AddFlight(req model.AddFlightRequest) (*model.Flight, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	if req.Rows <= 0 {
		req.Rows = s.cfg.SeatRows
	}

	var flight *model.Flight
	err := s.run("admin-add-flight", func(led *ledger.Ledger, st *model.State, now time.Time) (bool, error) {
		var err error
		flight, err = catalog.AddFlight(st, req)
		if err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("flight added",
		zap.String("flight_id", flight.ID),
		zap.String("route", flight.DepartureAirport+"->"+flight.ArrivalAirport))
	return flight, nil
}

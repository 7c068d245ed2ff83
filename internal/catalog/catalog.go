package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"airline-reservation/internal/model"
	apperrors "airline-reservation/pkg/app_errors"
)

// Search 依條件過濾航班：城市做不分大小寫的子字串比對、
// 起降時刻對舊格式字串做子字串比對、出發日期精確比對。
// 唯讀操作，結果依出發時刻排序。
func Search(st *model.State, req model.SearchRequest) []*model.Flight {
	var results []*model.Flight
	for _, flight := range st.Flights {
		if !matches(flight, req) {
			continue
		}
		results = append(results, flight)
	}
	sortByDeparture(results)
	return results
}

func matches(f *model.Flight, req model.SearchRequest) bool {
	if req.DepartingCity != "" && !containsFold(f.DepartureCity, req.DepartingCity) {
		return false
	}
	if req.ArrivingCity != "" && !containsFold(f.ArrivalCity, req.ArrivingCity) {
		return false
	}
	if req.DepartureTime != "" && !strings.Contains(f.FormattedDepartureTime(), strings.TrimSpace(req.DepartureTime)) {
		return false
	}
	if req.ArrivalTime != "" && !strings.Contains(f.FormattedArrivalTime(), strings.TrimSpace(req.ArrivalTime)) {
		return false
	}
	if req.DepartureDate != "" && f.DepartureDate() != strings.TrimSpace(req.DepartureDate) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(haystack)), strings.ToLower(strings.TrimSpace(needle)))
}

// ListFlights 全部航班，依出發時刻排序
func ListFlights(st *model.State) []*model.Flight {
	flights := make([]*model.Flight, 0, len(st.Flights))
	for _, flight := range st.Flights {
		flights = append(flights, flight)
	}
	sortByDeparture(flights)
	return flights
}

func sortByDeparture(flights []*model.Flight) {
	sort.Slice(flights, func(i, j int) bool {
		if flights[i].DepartureTime.Equal(flights[j].DepartureTime) {
			return flights[i].ID < flights[j].ID
		}
		return flights[i].DepartureTime.Before(flights[j].DepartureTime)
	})
}

// AddFlight 管理者新增航班。機場代碼轉大寫後必須是三碼英文字母
// （格式驗證在 service 層），出發必須早於抵達，id 重複直接拒絕。
func AddFlight(st *model.State, req model.AddFlightRequest) (*model.Flight, error) {
	if !req.DepartureTime.Before(req.ArrivalTime) {
		return nil, fmt.Errorf("%w: departure time must be before arrival time", apperrors.ErrInvalidRequest)
	}

	depAirport := strings.ToUpper(strings.TrimSpace(req.DepartureAirport))
	arrAirport := strings.ToUpper(strings.TrimSpace(req.ArrivalAirport))

	rows := req.Rows
	if rows <= 0 {
		rows = model.DefaultSeatRows
	}

	flightID := strings.TrimSpace(req.FlightID)
	if flightID == "" {
		flightID = model.FlightID(depAirport, arrAirport, req.DepartureTime)
	}
	if _, exists := st.Flights[flightID]; exists {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrFlightExists, flightID)
	}

	flight := &model.Flight{
		ID:               flightID,
		DepartureCity:    strings.TrimSpace(req.DepartureCity),
		ArrivalCity:      strings.TrimSpace(req.ArrivalCity),
		DepartureAirport: depAirport,
		ArrivalAirport:   arrAirport,
		DepartureTime:    req.DepartureTime.UTC(),
		ArrivalTime:      req.ArrivalTime.UTC(),
	}
	st.AddFlight(flight, model.NewSeatMap(rows))

	return flight, nil
}

// Seed 首次執行的預設航班目錄
func Seed(st *model.State) {
	departure := time.Date(2025, 3, 1, 8, 45, 0, 0, time.UTC)
	arrival := time.Date(2025, 3, 1, 10, 5, 0, 0, time.UTC)

	flight := &model.Flight{
		ID:               model.FlightID("SFO", "PDX", departure),
		DepartureCity:    "San Francisco",
		ArrivalCity:      "Portland",
		DepartureAirport: "SFO",
		ArrivalAirport:   "PDX",
		DepartureTime:    departure,
		ArrivalTime:      arrival,
	}
	st.AddFlight(flight, model.NewSeatMap(model.DefaultSeatRows))
}

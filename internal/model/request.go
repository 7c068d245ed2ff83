package model

import "time"

// CreateHoldRequest 建立保留請求。Seats 與 Count 互斥，必須二擇一；
// TTL 由 command 層帶入（旗標值或設定檔預設）。
type CreateHoldRequest struct {
	FlightID string        `validate:"required"`
	Customer string        `validate:"required"`
	Seats    []string      `validate:"omitempty,min=1,dive,required"`
	Count    int           `validate:"omitempty,min=1"`
	// TTL 非正值由 ledger 以 ErrInvalidTTL 拒絕
	TTL time.Duration
}

// AddFlightRequest 管理者新增航班請求
type AddFlightRequest struct {
	DepartureCity    string    `validate:"required"`
	ArrivalCity      string    `validate:"required"`
	DepartureAirport string    `validate:"required,len=3,alpha"`
	ArrivalAirport   string    `validate:"required,len=3,alpha"`
	DepartureTime    time.Time `validate:"required"`
	ArrivalTime      time.Time `validate:"required"`
	Rows             int       `validate:"omitempty,min=1,max=99"`
	// FlightID 可選，未指定時由機場代碼與出發時刻推導
	FlightID string
}

// SearchRequest 航班搜尋條件，全部選填
type SearchRequest struct {
	DepartingCity string
	ArrivingCity  string
	// DepartureTime / ArrivalTime 對 "YYYYMMDD HH:MM:SS" 做子字串比對
	DepartureTime string
	ArrivalTime   string
	// DepartureDate 對 "YYYY-MM-DD" 做精確比對
	DepartureDate string
}

package model

import (
	"fmt"
	"time"
)

// 時間顯示沿用舊系統格式，搜尋的子字串比對也是對這個格式做的
const (
	FlightTimeLayout = "20060102 15:04:05"
	FlightDateLayout = "2006-01-02"
)

// Flight 航班模型。建立後不可變，一個航班擁有一張座位表
// （座位表存放在 State.SeatMaps，以航班 id 為 key）。
type Flight struct {
	ID               string    `json:"id"`
	DepartureCity    string    `json:"departure_city"`
	ArrivalCity      string    `json:"arrival_city"`
	DepartureAirport string    `json:"departure_airport"`
	ArrivalAirport   string    `json:"arrival_airport"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
}

// FlightID 依出發/抵達機場與出發時刻推導出確定性的航班 id，
// 例如 F-SFO-PDX-20250301-0845
func FlightID(departureAirport, arrivalAirport string, departure time.Time) string {
	return fmt.Sprintf("F-%s-%s-%s",
		departureAirport, arrivalAirport, departure.UTC().Format("20060102-1504"))
}

// FormattedDepartureTime 舊格式 "YYYYMMDD HH:MM:SS"
func (f *Flight) FormattedDepartureTime() string {
	return f.DepartureTime.UTC().Format(FlightTimeLayout)
}

func (f *Flight) FormattedArrivalTime() string {
	return f.ArrivalTime.UTC().Format(FlightTimeLayout)
}

// DepartureDate 出發日期 "YYYY-MM-DD"，搜尋時做精確比對
func (f *Flight) DepartureDate() string {
	return f.DepartureTime.UTC().Format(FlightDateLayout)
}

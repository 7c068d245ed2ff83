package service

import (
	"testing"
	"time"

	"airline-reservation/config"
	"airline-reservation/internal/model"
	"airline-reservation/internal/repository"
	apperrors "airline-reservation/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFlightID = "F-SFO-PDX-20250301-0845"

var testNow = time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

// fixture：同一個狀態檔、可控制的時鐘。之後用同一個 cfg 再 New 一個
// Service 就等於模擬下一次 CLI 執行。
type fixture struct {
	cfg *config.Config
	now time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		cfg: config.LoadTestConfig(t.TempDir()),
		now: testNow,
	}
}

func (f *fixture) service() *Service {
	repo := repository.NewStateRepository(f.cfg.StateFile)
	return New(repo, f.cfg, WithNow(func() time.Time { return f.now }))
}

func holdRequest(seats []string, count int) model.CreateHoldRequest {
	return model.CreateHoldRequest{
		FlightID: testFlightID,
		Customer: "tarush",
		Seats:    seats,
		Count:    count,
		TTL:      2 * time.Minute,
	}
}

func TestService_Hold(t *testing.T) {
	t.Run("Success - persists across invocations", func(t *testing.T) {
		f := newFixture(t)

		hold, err := f.service().Hold(holdRequest([]string{"12A", "12B"}, 0))
		require.NoError(t, err)
		assert.Equal(t, []string{"12A", "12B"}, hold.Seats)

		// 新的 Service = 新的一次執行
		seatMap, err := f.service().ViewSeats(testFlightID)
		require.NoError(t, err)
		for _, code := range []string{"12A", "12B"} {
			status, serr := seatMap.State(code)
			require.NoError(t, serr)
			assert.Equal(t, model.SeatStatusHold, status)
		}
	})

	t.Run("Failed - InvalidRequest on missing customer", func(t *testing.T) {
		f := newFixture(t)

		req := holdRequest([]string{"12C"}, 0)
		req.Customer = ""
		_, err := f.service().Hold(req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})

	t.Run("Failed - SeatUnavailable does not mutate state", func(t *testing.T) {
		f := newFixture(t)

		first, err := f.service().Hold(holdRequest([]string{"12C"}, 0))
		require.NoError(t, err)

		_, err = f.service().Hold(holdRequest([]string{"12C"}, 0))
		assert.ErrorIs(t, err, apperrors.ErrSeatUnavailable)

		// 12C 仍掛在第一筆 hold 上，也沒有多出其他紀錄
		st, err := f.service().DebugDump()
		require.NoError(t, err)
		require.Len(t, st.Holds, 1)
		assert.Contains(t, st.Holds, first.ID)
		assert.Empty(t, st.Purchases)
	})
}

func TestService_Purchase(t *testing.T) {
	t.Run("Success - reload in fresh process shows PURCHASED", func(t *testing.T) {
		f := newFixture(t)

		hold, err := f.service().Hold(holdRequest([]string{"12C"}, 0))
		require.NoError(t, err)

		purchase, err := f.service().Purchase(hold.ID)
		require.NoError(t, err)
		assert.Equal(t, model.PurchaseStatusActive, purchase.Status)

		seatMap, err := f.service().ViewSeats(testFlightID)
		require.NoError(t, err)
		status, serr := seatMap.State("12C")
		require.NoError(t, serr)
		assert.Equal(t, model.SeatStatusPurchased, status)
	})

	t.Run("Failed - HoldExpired after ttl", func(t *testing.T) {
		f := newFixture(t)

		req := holdRequest([]string{"12C"}, 0)
		req.TTL = time.Minute
		hold, err := f.service().Hold(req)
		require.NoError(t, err)

		// +59s 還沒過期
		f.now = testNow.Add(59 * time.Second)
		st, err := f.service().DebugDump()
		require.NoError(t, err)
		assert.Equal(t, model.HoldStatusActive, st.Holds[hold.ID].Status)

		// +61s 過期，購買失敗、座位釋回
		f.now = testNow.Add(61 * time.Second)
		_, err = f.service().Purchase(hold.ID)
		assert.ErrorIs(t, err, apperrors.ErrHoldExpired)

		seatMap, err := f.service().ViewSeats(testFlightID)
		require.NoError(t, err)
		status, serr := seatMap.State("12C")
		require.NoError(t, serr)
		assert.Equal(t, model.SeatStatusAvailable, status)
	})

	t.Run("Failed - HoldNotFound", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service().Purchase("H-missing")
		assert.ErrorIs(t, err, apperrors.ErrHoldNotFound)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("Success - round-trip leaves seat available and records retained", func(t *testing.T) {
		f := newFixture(t)

		hold, err := f.service().Hold(holdRequest([]string{"12C"}, 0))
		require.NoError(t, err)
		purchase, err := f.service().Purchase(hold.ID)
		require.NoError(t, err)

		cancelled, err := f.service().Cancel(purchase.ID)
		require.NoError(t, err)
		assert.Equal(t, model.PurchaseStatusCancelled, cancelled.Status)

		seatMap, err := f.service().ViewSeats(testFlightID)
		require.NoError(t, err)
		status, serr := seatMap.State("12C")
		require.NoError(t, serr)
		assert.Equal(t, model.SeatStatusAvailable, status)

		st, err := f.service().DebugDump()
		require.NoError(t, err)
		assert.Equal(t, model.HoldStatusConsumed, st.Holds[hold.ID].Status)
		assert.Equal(t, model.PurchaseStatusCancelled, st.Purchases[purchase.ID].Status)
	})

	t.Run("Failed - PurchaseAlreadyCancelled", func(t *testing.T) {
		f := newFixture(t)

		hold, err := f.service().Hold(holdRequest(nil, 1))
		require.NoError(t, err)
		purchase, err := f.service().Purchase(hold.ID)
		require.NoError(t, err)
		_, err = f.service().Cancel(purchase.ID)
		require.NoError(t, err)

		_, err = f.service().Cancel(purchase.ID)
		assert.ErrorIs(t, err, apperrors.ErrPurchaseAlreadyCancelled)
	})
}

func TestService_ReadOnlySweepPersists(t *testing.T) {
	// 唯讀操作觸發的過期回收也要落盤，否則下次載入保留又復活
	f := newFixture(t)

	req := holdRequest([]string{"12C"}, 0)
	req.TTL = time.Minute
	hold, err := f.service().Hold(req)
	require.NoError(t, err)

	f.now = testNow.Add(2 * time.Minute)
	_, err = f.service().Search(model.SearchRequest{})
	require.NoError(t, err)

	// 直接讀狀態檔驗證 EXPIRED 已經持久化
	repo := repository.NewStateRepository(f.cfg.StateFile)
	st, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, model.HoldStatusExpired, st.Holds[hold.ID].Status)

	status, serr := st.SeatMaps[testFlightID].State("12C")
	require.NoError(t, serr)
	assert.Equal(t, model.SeatStatusAvailable, status)
}

func TestService_AutoAssign(t *testing.T) {
	f := newFixture(t)

	hold, err := f.service().Hold(holdRequest(nil, 3))
	require.NoError(t, err)
	// 全空座位表固定配 1A,1B,1C
	assert.Equal(t, []string{"1A", "1B", "1C"}, hold.Seats)
}

func TestService_AddFlight(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)

		flight, err := f.service().AddFlight(model.AddFlightRequest{
			DepartureCity:    "Seattle",
			ArrivalCity:      "Denver",
			DepartureAirport: "SEA",
			ArrivalAirport:   "DEN",
			DepartureTime:    time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC),
			ArrivalTime:      time.Date(2025, 4, 2, 12, 15, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, "F-SEA-DEN-20250402-0930", flight.ID)

		flights, err := f.service().ListFlights()
		require.NoError(t, err)
		assert.Len(t, flights, 2)
	})

	t.Run("Success - rows default comes from config", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.SeatRows = 10

		svc := f.service()
		assert.Equal(t, 10, svc.DefaultSeatRows())

		flight, err := svc.AddFlight(model.AddFlightRequest{
			DepartureCity:    "Seattle",
			ArrivalCity:      "Denver",
			DepartureAirport: "SEA",
			ArrivalAirport:   "DEN",
			DepartureTime:    time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC),
			ArrivalTime:      time.Date(2025, 4, 2, 12, 15, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		// 沒帶 rows 就用 AIRLINE_SEAT_ROWS 的值開座位表
		seatMap, err := f.service().ViewSeats(flight.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, seatMap.Rows)
		assert.Len(t, seatMap.Seats, 10*len(model.SeatLetters))
	})

	t.Run("Failed - InvalidRequest on bad IATA code", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service().AddFlight(model.AddFlightRequest{
			DepartureCity:    "Seattle",
			ArrivalCity:      "Denver",
			DepartureAirport: "SEAT",
			ArrivalAirport:   "DEN",
			DepartureTime:    time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC),
			ArrivalTime:      time.Date(2025, 4, 2, 12, 15, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})
}

func TestService_Search(t *testing.T) {
	f := newFixture(t)

	results, err := f.service().Search(model.SearchRequest{DepartingCity: "san fran"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, testFlightID, results[0].ID)

	results, err = f.service().Search(model.SearchRequest{DepartingCity: "nowhere"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

package command

import (
	"fmt"
	"strconv"
	"strings"

	"airline-reservation/internal/model"

	"github.com/urfave/cli/v2"
)

func printFlights(c *cli.Context, flights []*model.Flight) {
	if len(flights) == 0 {
		fmt.Fprintln(c.App.Writer, "No flights found.")
		return
	}
	for _, f := range flights {
		fmt.Fprintf(c.App.Writer, "- flight_id=%s\n", f.ID)
		fmt.Fprintf(c.App.Writer, "  %s (%s) -> %s (%s)\n",
			f.DepartureCity, f.DepartureAirport, f.ArrivalCity, f.ArrivalAirport)
		fmt.Fprintf(c.App.Writer, "  depart=%s  arrive=%s\n",
			f.FormattedDepartureTime(), f.FormattedArrivalTime())
		fmt.Fprintln(c.App.Writer)
	}
}

func seatSymbol(status model.SeatStatus) string {
	switch status {
	case model.SeatStatusAvailable:
		return "O"
	case model.SeatStatusHold:
		return "H"
	case model.SeatStatusPurchased:
		return "X"
	}
	return "?"
}

// formatSeatGrid ASCII 座位圖，C/D 之間留走道
func formatSeatGrid(m *model.SeatMap) string {
	var out []string
	out = append(out, "Row  A   B   C     D   E   F")
	out = append(out, "--------------------------------")
	for r := 1; r <= m.Rows; r++ {
		symbols := make([]string, len(model.SeatLetters))
		for i, letter := range model.SeatLetters {
			seat := m.Seats[strconv.Itoa(r)+letter]
			symbols[i] = seatSymbol(seat.Status)
		}
		out = append(out, fmt.Sprintf("%3d  %s   %s   %s     %s   %s   %s",
			r, symbols[0], symbols[1], symbols[2], symbols[3], symbols[4], symbols[5]))
	}
	out = append(out, "")
	out = append(out, "Legend: O=AVAILABLE, H=HOLD, X=PURCHASED")
	return strings.Join(out, "\n")
}

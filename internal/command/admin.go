package command

import (
	"fmt"
	"strings"
	"time"

	"airline-reservation/internal/model"

	"github.com/urfave/cli/v2"
)

// 管理者輸入的 UTC 時刻，兩種寫法都收
var adminDatetimeLayouts = []string{"2006-01-02T15:04", "2006-01-02 15:04"}

func parseAdminDatetime(raw, fieldName string) (time.Time, error) {
	candidate := strings.TrimSpace(raw)
	for _, layout := range adminDatetimeLayouts {
		if parsed, err := time.Parse(layout, candidate); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid %s, use 'YYYY-MM-DDTHH:MM' (or 'YYYY-MM-DD HH:MM')", fieldName)
}

func adminAddFlightCommand() *cli.Command {
	return &cli.Command{
		Name:  "admin-add-flight",
		Usage: "Admin: add a flight",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "departure-city", Required: true},
			&cli.StringFlag{Name: "arrival-city", Required: true},
			&cli.StringFlag{Name: "departure-airport", Required: true, Usage: "3-letter IATA code, e.g. SFO"},
			&cli.StringFlag{Name: "arrival-airport", Required: true, Usage: "3-letter IATA code, e.g. PDX"},
			&cli.StringFlag{Name: "departure-datetime", Required: true, Usage: "UTC datetime: YYYY-MM-DDTHH:MM"},
			&cli.StringFlag{Name: "arrival-datetime", Required: true, Usage: "UTC datetime: YYYY-MM-DDTHH:MM"},
			&cli.IntFlag{Name: "rows", Usage: "number of seat rows (A-F layout, default from AIRLINE_SEAT_ROWS)"},
			&cli.StringFlag{Name: "flight-id", Usage: "optional explicit flight_id"},
		},
		Action: func(c *cli.Context) error {
			departure, err := parseAdminDatetime(c.String("departure-datetime"), "departure datetime")
			if err != nil {
				return cli.Exit(fmt.Sprintf("ERROR: %v", err), 2)
			}
			arrival, err := parseAdminDatetime(c.String("arrival-datetime"), "arrival datetime")
			if err != nil {
				return cli.Exit(fmt.Sprintf("ERROR: %v", err), 2)
			}

			svc := buildService(c)
			rows := c.Int("rows")
			if rows <= 0 {
				rows = svc.DefaultSeatRows()
			}
			flight, err := svc.AddFlight(model.AddFlightRequest{
				DepartureCity:    c.String("departure-city"),
				ArrivalCity:      c.String("arrival-city"),
				DepartureAirport: strings.ToUpper(strings.TrimSpace(c.String("departure-airport"))),
				ArrivalAirport:   strings.ToUpper(strings.TrimSpace(c.String("arrival-airport"))),
				DepartureTime:    departure,
				ArrivalTime:      arrival,
				Rows:             rows,
				FlightID:         c.String("flight-id"),
			})
			if err != nil {
				return exitErr(err)
			}

			fmt.Fprintln(c.App.Writer, "FLIGHT ADDED")
			fmt.Fprintf(c.App.Writer, "flight_id=%s\n", flight.ID)
			fmt.Fprintf(c.App.Writer, "route=%s->%s\n", flight.DepartureAirport, flight.ArrivalAirport)
			fmt.Fprintf(c.App.Writer, "depart=%s\n", flight.FormattedDepartureTime())
			fmt.Fprintf(c.App.Writer, "arrive=%s\n", flight.FormattedArrivalTime())
			fmt.Fprintf(c.App.Writer, "rows=%d\n", rows)
			return nil
		},
	}
}

func adminListFlightsCommand() *cli.Command {
	return &cli.Command{
		Name:  "admin-list-flights",
		Usage: "Admin: list all flights",
		Action: func(c *cli.Context) error {
			svc := buildService(c)
			flights, err := svc.ListFlights()
			if err != nil {
				return exitErr(err)
			}
			printFlights(c, flights)
			return nil
		},
	}
}

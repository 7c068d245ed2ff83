package command

import (
	"airline-reservation/internal/model"

	"github.com/urfave/cli/v2"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search flights",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "departing-city"},
			&cli.StringFlag{Name: "arriving-city"},
			&cli.StringFlag{Name: "departure-time", Usage: `substring match against "YYYYMMDD HH:MM:SS"`},
			&cli.StringFlag{Name: "arrival-time", Usage: `substring match against "YYYYMMDD HH:MM:SS"`},
			&cli.StringFlag{Name: "departure-date", Usage: `exact match "YYYY-MM-DD"`},
		},
		Action: func(c *cli.Context) error {
			svc := buildService(c)
			flights, err := svc.Search(model.SearchRequest{
				DepartingCity: c.String("departing-city"),
				ArrivingCity:  c.String("arriving-city"),
				DepartureTime: c.String("departure-time"),
				ArrivalTime:   c.String("arrival-time"),
				DepartureDate: c.String("departure-date"),
			})
			if err != nil {
				return exitErr(err)
			}
			printFlights(c, flights)
			return nil
		},
	}
}

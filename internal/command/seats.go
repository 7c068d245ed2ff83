package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func seatsCommand() *cli.Command {
	return &cli.Command{
		Name:      "seats",
		Usage:     "View seat map for a flight",
		ArgsUsage: "<flight_id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: airline seats <flight_id>", 2)
			}
			flightID := c.Args().First()

			svc := buildService(c)
			seatMap, err := svc.ViewSeats(flightID)
			if err != nil {
				return exitErr(err)
			}

			fmt.Fprintf(c.App.Writer, "Flight: %s\n", flightID)
			fmt.Fprintln(c.App.Writer, formatSeatGrid(seatMap))
			return nil
		},
	}
}

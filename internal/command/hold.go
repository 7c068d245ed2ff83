package command

import (
	"fmt"
	"strings"
	"time"

	"airline-reservation/internal/model"

	"github.com/urfave/cli/v2"
)

func holdCommand() *cli.Command {
	return &cli.Command{
		Name:      "hold",
		Usage:     "Reserve seats (create a hold)",
		ArgsUsage: "<flight_id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "customer", Required: true},
			&cli.StringFlag{Name: "seats", Usage: "comma-separated seats, e.g. 12A,12B"},
			&cli.IntFlag{Name: "count", Usage: "auto-assign first N available seats"},
			&cli.IntFlag{Name: "hold-minutes", Usage: "override default hold TTL"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: airline hold <flight_id> --customer <name> [--seats | --count]", 2)
			}

			svc := buildService(c)

			ttl := svc.DefaultHoldTTL()
			if c.IsSet("hold-minutes") {
				ttl = time.Duration(c.Int("hold-minutes")) * time.Minute
			}

			var seats []string
			if raw := c.String("seats"); raw != "" {
				seats = strings.Split(raw, ",")
			}

			hold, err := svc.Hold(model.CreateHoldRequest{
				FlightID: c.Args().First(),
				Customer: c.String("customer"),
				Seats:    seats,
				Count:    c.Int("count"),
				TTL:      ttl,
			})
			if err != nil {
				return exitErr(err)
			}

			fmt.Fprintln(c.App.Writer, "HOLD CREATED")
			fmt.Fprintf(c.App.Writer, "hold_id=%s\n", hold.ID)
			fmt.Fprintf(c.App.Writer, "flight_id=%s\n", hold.FlightID)
			fmt.Fprintf(c.App.Writer, "customer=%s\n", hold.Customer)
			fmt.Fprintf(c.App.Writer, "seats=%s\n", strings.Join(hold.Seats, ","))
			fmt.Fprintf(c.App.Writer, "expires_utc=%s\n", hold.ExpiresAt.Format(time.RFC3339))
			fmt.Fprintf(c.App.Writer, "status=%s\n", hold.Status)
			return nil
		},
	}
}

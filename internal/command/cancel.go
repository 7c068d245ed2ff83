package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

func cancelCommand() *cli.Command {
	return &cli.Command{
		Name:      "cancel",
		Usage:     "Cancel a purchase",
		ArgsUsage: "<purchase_id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: airline cancel <purchase_id>", 2)
			}

			svc := buildService(c)
			purchase, err := svc.Cancel(c.Args().First())
			if err != nil {
				return exitErr(err)
			}

			fmt.Fprintln(c.App.Writer, "PURCHASE CANCELLED")
			fmt.Fprintf(c.App.Writer, "purchase_id=%s\n", purchase.ID)
			fmt.Fprintf(c.App.Writer, "flight_id=%s\n", purchase.FlightID)
			fmt.Fprintf(c.App.Writer, "customer=%s\n", purchase.Customer)
			fmt.Fprintf(c.App.Writer, "seats=%s\n", strings.Join(purchase.Seats, ","))
			fmt.Fprintf(c.App.Writer, "status=%s\n", purchase.Status)
			return nil
		},
	}
}

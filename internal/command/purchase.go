package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

func purchaseCommand() *cli.Command {
	return &cli.Command{
		Name:      "purchase",
		Usage:     "Purchase a hold (payment stubbed)",
		ArgsUsage: "<hold_id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: airline purchase <hold_id>", 2)
			}

			svc := buildService(c)
			purchase, err := svc.Purchase(c.Args().First())
			if err != nil {
				return exitErr(err)
			}

			fmt.Fprintln(c.App.Writer, "PURCHASE COMPLETED (payment stubbed)")
			fmt.Fprintf(c.App.Writer, "purchase_id=%s\n", purchase.ID)
			fmt.Fprintf(c.App.Writer, "flight_id=%s\n", purchase.FlightID)
			fmt.Fprintf(c.App.Writer, "customer=%s\n", purchase.Customer)
			fmt.Fprintf(c.App.Writer, "seats=%s\n", strings.Join(purchase.Seats, ","))
			fmt.Fprintf(c.App.Writer, "purchased_utc=%s\n", purchase.PurchasedAt.Format(time.RFC3339))
			fmt.Fprintf(c.App.Writer, "status=%s\n", purchase.Status)
			return nil
		},
	}
}

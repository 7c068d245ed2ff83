package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

func debugCommand() *cli.Command {
	return &cli.Command{
		Name:  "debug",
		Usage: "Print holds/purchases (dev helper)",
		Action: func(c *cli.Context) error {
			svc := buildService(c)
			st, err := svc.DebugDump()
			if err != nil {
				return exitErr(err)
			}

			fmt.Fprintln(c.App.Writer, "=== Holds ===")
			for _, h := range st.Holds {
				fmt.Fprintf(c.App.Writer, "%s flight=%s seats=%s cust=%s exp=%s status=%s\n",
					h.ID, h.FlightID, strings.Join(h.Seats, ","), h.Customer,
					h.ExpiresAt.Format(time.RFC3339), h.Status)
			}
			fmt.Fprintln(c.App.Writer)
			fmt.Fprintln(c.App.Writer, "=== Purchases ===")
			for _, p := range st.Purchases {
				fmt.Fprintf(c.App.Writer, "%s flight=%s seats=%s cust=%s t=%s status=%s\n",
					p.ID, p.FlightID, strings.Join(p.Seats, ","), p.Customer,
					p.PurchasedAt.Format(time.RFC3339), p.Status)
			}
			return nil
		},
	}
}

package command

import (
	"fmt"

	"airline-reservation/config"
	"airline-reservation/internal/repository"
	"airline-reservation/internal/service"

	"github.com/urfave/cli/v2"
)

// NewApp 組出完整的 CLI。每個子命令就是一次完整的
// load→sweep→execute→persist 週期，執行完 process 就結束。
func NewApp() *cli.App {
	return &cli.App{
		Name:  "airline",
		Usage: "airline seat reservation CLI",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "state-file",
				Usage:   "path to the persisted state JSON",
				EnvVars: []string{"AIRLINE_STATE_FILE"},
			},
		},
		Commands: []*cli.Command{
			searchCommand(),
			seatsCommand(),
			holdCommand(),
			purchaseCommand(),
			cancelCommand(),
			debugCommand(),
			adminAddFlightCommand(),
			adminListFlightsCommand(),
		},
	}
}

func buildService(c *cli.Context) *service.Service {
	cfg := config.LoadConfig()
	if path := c.String("state-file"); path != "" {
		cfg.StateFile = path
	}
	repo := repository.NewStateRepository(cfg.StateFile)
	return service.New(repo, cfg)
}

// exitErr 網域錯誤與持久化錯誤一律映射成 exit code 2
func exitErr(err error) error {
	return cli.Exit(fmt.Sprintf("ERROR: %v", err), 2)
}

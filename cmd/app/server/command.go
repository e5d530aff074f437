package server

import (
	"os"

	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "start",
		Usage: "start server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Aliases: []string{"a"},
				Usage:   "listen address, overrides WEBBY_SERVICE_ADDRESS",
			},
		},
		Action: func(c *cli.Context) error {
			if addr := c.String("address"); addr != "" {
				if err := os.Setenv("WEBBY_SERVICE_ADDRESS", addr); err != nil {
					return err
				}
			}
			Run()
			return nil
		},
	}
}

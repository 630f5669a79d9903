package main

import (
	"context"
	"os"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}

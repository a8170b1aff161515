package main

import (
	"fmt"
	"os"

	corecmd "github.com/0x9900/sunfluxbot/core/cmd"
	"github.com/0x9900/sunfluxbot/internal/app"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		LoadConfig: app.LoadConfig,
		Bootstrap:  app.Bootstrap,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "sunfluxbot:", err)
		os.Exit(1)
	}
}

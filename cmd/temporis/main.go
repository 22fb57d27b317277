// cmd/temporis/main.go
package main

import (
	"os"
	_ "time/tzdata"

	"github.com/sjatkinson/temporis/internal/cli"
)

func main() {
	code := cli.Run(os.Args[1:], cli.Config{
		AppName: "temporis",
		Version: "0.1.0-dev",
		Out:     os.Stdout,
		Err:     os.Stderr,
		In:      os.Stdin,
	})
	os.Exit(code)
}

package main

import (
	"os"

	"github.com/tinyid-go/tinyid/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

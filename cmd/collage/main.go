package main

import (
	"os"

	"github.com/go-collage/collage/cmd/collage/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

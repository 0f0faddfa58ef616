package main

import (
	"os"

	"github.com/schmitthub/hudkit/internal/hudkit"
)

func main() {
	os.Exit(hudkit.Main())
}

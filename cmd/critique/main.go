package main

import (
	"os"

	"github.com/critique-dev/critique/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}

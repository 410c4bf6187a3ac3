package main

import (
	"os"

	"github.com/aholstenson/aget/internal/runner"
)

func main() {
	os.Exit(runner.Run())
}

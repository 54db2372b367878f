package main

import (
	"github.com/matjam/shaderpaper/internal/cli"
)

func main() {
	cli.Execute()
}

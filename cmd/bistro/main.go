package main

import (
	"github.com/NVIDIA/bistro/pkg/cli"
)

func main() {
	cli.Execute()
}

package main

import (
	"github.com/fkautz/terrapin/pkg/cli"
)

func main() {
	cli.Execute()
}

package main

import (
	"os"

	"github.com/viant/hmap/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}

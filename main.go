package main

import (
	"os"

	"github.com/taldata/izun-sub001/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

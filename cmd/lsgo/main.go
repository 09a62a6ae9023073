package main

import (
	"os"

	"github.com/harrison/lsgo/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

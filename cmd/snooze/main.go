package main

import (
	"os"

	"github.com/d-kuro/snooze/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

package main

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/dietplanner/internal/cmd"
	"github.com/Iron-Ham/dietplanner/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

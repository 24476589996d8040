package main

import (
	"fmt"
	"os"

	"github.com/hamzaanis/openedx-client/internal/config"
	"github.com/hamzaanis/openedx-client/internal/i18n"
	"github.com/hamzaanis/openedx-client/internal/tui"
)

func main() {
	settings := config.LoadDefault()

	translator, err := i18n.NewTranslator(settings.Language)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(settings, translator); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

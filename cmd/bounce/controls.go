package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce/internal/input"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show the key bindings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(controlsHelp())
	},
}

func controlsHelp() string {
	h := help.New()
	h.ShowAll = true
	return h.View(input.DefaultKeyMap())
}

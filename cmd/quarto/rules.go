package main

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
)

//go:embed rules.txt
var rulesText string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rules of Quarto",
	Args:  cobra.NoArgs,
	Run:   runRules,
}

func runRules(cmd *cobra.Command, args []string) {
	fmt.Print(rulesText)
}

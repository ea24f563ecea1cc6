package main

import (
	"fmt"
	"os"

	"github.com/johnmorse/rhinoinsertcommand/cmd/blockinsert"
	"github.com/johnmorse/rhinoinsertcommand/pkg/style"
)

func main() {
	rootCmd := blockinsert.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

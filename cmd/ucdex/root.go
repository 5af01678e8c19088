package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ucdex",
	Short: "Compile Unicode codepoint sets into compact tries",
	Long: `ucdex compiles boolean codepoint sets defined by the Unicode Character Database
into deduplicated multi-level bitmap tries. A compiled trie serializes to a
flat byte layout that can be stored as-is or embedded in generated Go source,
and answers membership queries with no parsing and no allocation.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

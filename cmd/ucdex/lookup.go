package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "lookup trieset codepoint...",
		Short: "Query a compiled trie for codepoints",
		Long: `lookup answers membership queries against a compiled trie. Codepoints are
written as U+XXXX or as bare hexadecimal. This command is primarily aimed at
debugging compiled sets.`,
		Example: `  ucdex lookup alphabetic.trie U+0041 U+03B1 20`,
		Args:    cobra.MinimumNArgs(2),
		RunE:    runLookup,
	}
	rootCmd.AddCommand(cmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	set, err := readTrieSet(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		cp, err := parseCodePoint(arg)
		if err != nil {
			return err
		}
		member, err := set.Contains(cp)
		if err != nil {
			return fmt.Errorf("%U: %w", cp, err)
		}
		fmt.Printf("%U %v\n", cp, member)
	}
	return nil
}

func parseCodePoint(src string) (rune, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(src, "U+"), "u+")
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %#v: %w", src, err)
	}
	return rune(n), nil
}

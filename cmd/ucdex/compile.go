package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nihei9/ucdex/trie"
	"github.com/nihei9/ucdex/ucd"
)

var compileFlags = struct {
	ucdDir     *string
	property   *string
	value      *string
	chunkWidth *int
	debug      *bool
	output     *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a UCD property into a codepoint set trie",
		Long: `compile resolves the codepoint ranges of a Unicode property from a UCD
directory and compiles them into a serialized trie.`,
		Example: `  Compile a binary property:
    ucdex compile --ucd-dir ucd --property Alphabetic -o alphabetic.trie
  Compile a General_Category value:
    ucdex compile --ucd-dir ucd --property gc --value Lu -o lu.trie`,
		Args: cobra.NoArgs,
		RunE: runCompile,
	}
	compileFlags.ucdDir = cmd.Flags().String("ucd-dir", "", "path to a UCD directory")
	cmd.MarkFlagRequired("ucd-dir")
	compileFlags.property = cmd.Flags().StringP("property", "p", "", "property name")
	cmd.MarkFlagRequired("property")
	compileFlags.value = cmd.Flags().StringP("value", "v", "", "property value (a gc value, or an affirmative alias for binary properties)")
	compileFlags.chunkWidth = cmd.Flags().Int("chunk-width", trie.DefaultChunkWidth, "bitmap chunk width in bits")
	compileFlags.debug = cmd.Flags().BoolP("debug", "d", false, "log compilation statistics to stderr")
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	props, err := ucd.LoadDir(*compileFlags.ucdDir)
	if err != nil {
		return fmt.Errorf("Cannot load the UCD directory: %w", err)
	}
	cpRanges, err := props.FindCodePointRanges(*compileFlags.property, *compileFlags.value)
	if err != nil {
		return err
	}
	ranges := make([]trie.Range, len(cpRanges))
	for i, r := range cpRanges {
		ranges[i] = trie.Range{
			From: r.From,
			To:   r.To,
		}
	}

	var opts []trie.CompileOption
	if *compileFlags.debug {
		opts = append(opts, trie.EnableLogging(os.Stderr))
	}
	set, err := trie.Compile(ranges, trie.DefaultSpaceWidth, *compileFlags.chunkWidth, opts...)
	if err != nil {
		return fmt.Errorf("Cannot compile the codepoint set: %w", err)
	}
	data, err := set.MarshalBinary()
	if err != nil {
		return err
	}

	w := os.Stdout
	if *compileFlags.output != "" {
		f, err := os.OpenFile(*compileFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("Cannot open the output file %s: %w", *compileFlags.output, err)
		}
		defer f.Close()
		w = f
	}
	_, err = w.Write(data)
	return err
}

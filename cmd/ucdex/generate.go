package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nihei9/ucdex/gen"
	"github.com/nihei9/ucdex/trie"
)

var generateFlags = struct {
	pkgName *string
	varName *string
	output  *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "generate trieset",
		Short: "Generate Go source embedding a compiled trie",
		Long: `generate takes a compiled trie and emits a Go source file that embeds it as a
byte literal and rebuilds it at package initialization.`,
		Example: `  ucdex generate alphabetic.trie -p unicodetables -o alphabetic.go`,
		Args:    cobra.ExactArgs(1),
		RunE:    runGenerate,
	}
	generateFlags.pkgName = cmd.Flags().StringP("package", "p", "main", "package name")
	generateFlags.varName = cmd.Flags().StringP("name", "n", "", "variable name (default: derived from the input file name)")
	generateFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	set, err := readTrieSet(args[0])
	if err != nil {
		return err
	}

	varName := *generateFlags.varName
	if varName == "" {
		varName = varNameFromPath(args[0])
	}
	src, err := gen.GenTrieSet(set, *generateFlags.pkgName, varName)
	if err != nil {
		return fmt.Errorf("Failed to generate source code: %w", err)
	}

	w := os.Stdout
	if *generateFlags.output != "" {
		f, err := os.OpenFile(*generateFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("Cannot open the output file %s: %w", *generateFlags.output, err)
		}
		defer f.Close()
		w = f
	}
	_, err = w.Write(src)
	return err
}

func readTrieSet(path string) (*trie.TrieSet, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot read the compiled trie %s: %w", path, err)
	}
	set, err := trie.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("Cannot decode the compiled trie %s: %w", path, err)
	}
	return set, nil
}

// varNameFromPath derives an exported identifier from a file name:
// alphabetic.trie becomes Alphabetic, white_space.trie becomes WhiteSpace.
func varNameFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	var b strings.Builder
	upper := true
	for _, r := range base {
		if r == '_' || r == '-' || r == '.' {
			upper = true
			continue
		}
		if upper {
			b.WriteString(strings.ToUpper(string(r)))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nihei9/ucdex/ucd"
)

var propertiesFlags = struct {
	ucdDir *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "List the properties a UCD directory provides",
		Args:  cobra.NoArgs,
		RunE:  runProperties,
	}
	propertiesFlags.ucdDir = cmd.Flags().String("ucd-dir", "", "path to a UCD directory")
	cmd.MarkFlagRequired("ucd-dir")
	rootCmd.AddCommand(cmd)
}

func runProperties(cmd *cobra.Command, args []string) error {
	props, err := ucd.LoadDir(*propertiesFlags.ucdDir)
	if err != nil {
		return fmt.Errorf("Cannot load the UCD directory: %w", err)
	}
	for _, name := range props.PropertyNames() {
		fmt.Println(name)
	}
	return nil
}

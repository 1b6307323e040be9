// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	jsonForm   bool
	reversible bool
	gzipInput  bool
	verbose    bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "uacodec",
		Short: "An OPC UA PubSub NetworkMessage codec",
		Long:  "A NetworkMessage/DataSetMessage binary and JSON codec for OPC UA PubSub, built for inspecting and round-tripping capture files",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("uacodec version 0.1.0")
		},
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump [files...]",
		Short: "Decode a NetworkMessage and print it as pretty JSON",
		Args:  cobra.MinimumNArgs(1),
		Run:   runDump,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	dumpCmd.Flags().BoolVarP(&jsonForm, "json", "j", false, "input is already the JSON NetworkMessage form, not UADP binary")
	dumpCmd.Flags().BoolVarP(&gzipInput, "gzip", "z", false, "input file is gzip-compressed")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(newIDCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/cosmez/respcodec/internal/resp"
	"github.com/spf13/cobra"
)

func newEncodeCommand() *cobra.Command {
	var asHex bool

	cmd := &cobra.Command{
		Use:   "encode ARG...",
		Short: "Render arguments as a RESP array-of-bulk-strings command invocation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			rendered := make([]interface{}, len(argv))
			for i, a := range argv {
				if n, err := strconv.ParseInt(a, 10, 64); err == nil {
					rendered[i] = n
				} else {
					rendered[i] = a
				}
			}

			wire, err := resp.Encode(rendered...)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			if asHex {
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(wire))
				return nil
			}
			_, err = cmd.OutOrStdout().Write(wire)
			return err
		},
	}

	cmd.Flags().BoolVar(&asHex, "hex", false, "print the wire bytes hex-encoded instead of raw")
	return cmd
}

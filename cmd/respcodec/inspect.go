package main

import (
	"fmt"
	"os"

	"github.com/cosmez/respcodec/internal/tui"
	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	var chunkSize int

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Step a file through the codec frame by frame in an interactive TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			data, err := os.ReadFile(argv[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", argv[0], err)
			}
			return tui.Run(data, chunkSize)
		},
	}

	cmd.Flags().IntVar(&chunkSize, "chunk-size", 32, "bytes fed to the codec per step")
	return cmd
}

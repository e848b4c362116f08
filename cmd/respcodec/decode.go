package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cosmez/respcodec/internal/output"
	"github.com/cosmez/respcodec/internal/resp"
	"github.com/cosmez/respcodec/internal/serializer"
	"github.com/spf13/cobra"
)

func newDecodeCommand() *cobra.Command {
	var chunkSize int
	var pipeName string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "decode [FILE]",
		Short: "Feed a byte stream through the codec and print every decoded value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			var r io.Reader = os.Stdin
			if len(argv) == 1 {
				f, err := os.Open(argv[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", argv[0], err)
				}
				defer f.Close()
				r = f
			}

			var ser serializer.Serializer
			if pipeName != "" {
				s, err := serializer.Get(pipeName)
				if err != nil {
					return err
				}
				ser = s
			}

			return decodeStream(cmd.OutOrStdout(), r, chunkSize, output.PrintOpts{
				Color:      !noColor,
				Serializer: ser,
				Newline:    true,
			})
		},
	}

	cmd.Flags().IntVar(&chunkSize, "chunk-size", 4096,
		"read the input in chunks of this many bytes, exercising tail retention across Parse calls")
	cmd.Flags().StringVar(&pipeName, "pipe", "",
		"post-process decoded blob/verbatim payloads through a serializer (base64, gzip, snappy)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	return cmd
}

// defaultDecodeOpts returns the PrintOpts decodeStream uses when colors and
// pipe transforms are disabled, kept here so tests can call decodeStream
// without depending on flag defaults.
func defaultDecodeOpts() output.PrintOpts {
	return output.PrintOpts{Color: false, Newline: true}
}

func decodeStream(w io.Writer, r io.Reader, chunkSize int, opts output.PrintOpts) error {
	if chunkSize <= 0 {
		chunkSize = 4096
	}

	codec := resp.New()
	br := bufio.NewReader(r)
	buf := make([]byte, chunkSize)

	for {
		n, readErr := br.Read(buf)
		if n > 0 {
			codec.Write(buf[:n])
			values, err := codec.Parse()
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			for _, v := range values {
				output.PrintValue(w, v, opts)
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				return nil
			}
			return readErr
		}
	}
}

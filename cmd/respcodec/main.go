// Command respcodec is an operator tool built directly on the codec's
// public surface (Write/Parse/Encode). It exercises the wire format
// without needing a live Redis server: encode arguments, decode a byte
// stream, round-trip lines interactively, or step a file through the
// codec frame by frame.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev" // set at build time via -ldflags "-X main.version=..."

func main() {
	root := &cobra.Command{
		Use:     "respcodec",
		Short:   "Encode, decode, and inspect the Redis Serialization Protocol",
		Version: version,
	}

	root.AddCommand(newEncodeCommand())
	root.AddCommand(newDecodeCommand())
	root.AddCommand(newReplCommand())
	root.AddCommand(newInspectCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

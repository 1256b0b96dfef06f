// Command manpack compresses and decompresses rasterized images with
// the generic Huffman codec from the manpack package.
//
// Usage:
//
//	manpack compress [options] <input.png|.jpg|.gif>   image → .mp
//	manpack decompress [options] <input.mp>            .mp → PNG
//	manpack info <input.mp>                            display header + pixel count
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	root := newRootCmd(log)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "manpack: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "manpack",
		Short: "Lossless Huffman image compressor",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCompressCmd(log))
	root.AddCommand(newDecompressCmd(log))
	root.AddCommand(newInfoCmd(log))
	return root
}

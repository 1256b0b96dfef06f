package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Kicer86/manpack"
)

func newInfoCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "info <input.mp>",
		Short: "Display the header and pixel count of a manpack stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(log, args[0])
		},
	}
}

func runInfo(log *logrus.Logger, inputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}
	if len(data) < 8 {
		return fmt.Errorf("info: %s is too short to be a manpack stream", inputPath)
	}

	width := binary.LittleEndian.Uint32(data[0:4])
	height := binary.LittleEndian.Uint32(data[4:8])

	_, _, pixels, err := manpack.DecompressImage(data)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	fmt.Printf("File:       %s\n", inputPath)
	fmt.Printf("Dimensions: %d x %d\n", width, height)
	fmt.Printf("Pixels:     %d\n", len(pixels))
	fmt.Printf("File size:  %d bytes\n", len(data))
	return nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Kicer86/manpack"
	"github.com/Kicer86/manpack/internal/metrics"
)

func newDecompressCmd(log *logrus.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decompress <input.mp>",
		Short: "Decompress a manpack stream back into a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompress(log, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", `output path (default: <input>.png)`)
	return cmd
}

func runDecompress(log *logrus.Logger, inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}

	width, height, pixels, err := manpack.DecompressImage(data)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}
	log.WithFields(logrus.Fields{"width": width, "height": height, "pixels": len(pixels)}).Debug("manpack: decoded stream")

	img, err := rebuildImage(width, height, pixels)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}

	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		outputPath = base + ".png"
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}
	if err := encodePNG(out, img); err != nil {
		out.Close()
		os.Remove(outputPath)
		return fmt.Errorf("decompress: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	metrics.Global.LogSummary(log)
	log.WithFields(logrus.Fields{
		"input":  inputPath,
		"output": outputPath,
	}).Info("manpack: decompressed")
	return nil
}

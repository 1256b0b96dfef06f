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

func newCompressCmd(log *logrus.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compress <input>",
		Short: "Compress a PNG/JPEG/GIF image into a manpack stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(log, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", `output path (default: <input>.mp)`)
	return cmd
}

func runCompress(log *logrus.Logger, inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	defer in.Close()

	img, err := decodeImage(in)
	if err != nil {
		return fmt.Errorf("compress: decoding %s: %w", inputPath, err)
	}

	width, height, pixels := flattenPixels(img)
	log.WithFields(logrus.Fields{"width": width, "height": height, "pixels": len(pixels)}).Debug("manpack: flattened image")

	data, err := manpack.CompressImage(width, height, pixels)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		outputPath = base + ".mp"
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	metrics.Global.LogSummary(log)
	log.WithFields(logrus.Fields{
		"input":  inputPath,
		"output": outputPath,
		"bytes":  len(data),
	}).Info("manpack: compressed")
	return nil
}

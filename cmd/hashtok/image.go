package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hashtok-ml/hashtok/tokenizer"
)

func newImageCmd() *cobra.Command {
	var height, width int

	cmd := &cobra.Command{
		Use:   "image [file]",
		Short: "Tokenize 2D matrices into hashed patch ids",
		Long: "Reads a JSON array of matrices (each an array of float rows) " +
			"from the file argument or stdin and prints one id grid per matrix.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			images, err := readImages(args)
			if err != nil {
				return err
			}
			logger.Debug().Int("images", len(images)).Msg("tokenizing images")

			cfg := activeCfg
			tok, err := tokenizer.NewImage(cfg.Vocab.NumEmbeddings,
				tokenizer.WithPaddingIdx(cfg.Vocab.PaddingIdx),
				tokenizer.WithWindowShape(height, width),
				tokenizer.WithStride(cfg.Windowed.Stride),
				tokenizer.WithPaddingValue(cfg.Windowed.PaddingValue),
				tokenizer.WithSeed(cfg.Windowed.Seed),
			)
			if err != nil {
				return err
			}

			ids, err := tok.Call(images)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), ids)
		},
	}

	cmd.Flags().IntVar(&height, "window-height", 9, "Patch height")
	cmd.Flags().IntVar(&width, "window-width", 9, "Patch width")
	return cmd
}

func readImages(args []string) ([][][]float64, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var images [][][]float64
	if err := json.Unmarshal(data, &images); err != nil {
		return nil, err
	}
	return images, nil
}

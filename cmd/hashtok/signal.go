package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hashtok-ml/hashtok/tokenizer"
)

func newSignalCmd() *cobra.Command {
	var derivative bool

	cmd := &cobra.Command{
		Use:   "signal [file]",
		Short: "Tokenize numeric signals into hashed window ids",
		Long: "Reads a JSON array of signals (each an array of floats) from " +
			"the file argument or stdin and prints one id sequence per signal.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signals, err := readSignals(args)
			if err != nil {
				return err
			}
			logger.Debug().Int("signals", len(signals)).Bool("derivative", derivative).Msg("tokenizing signals")

			cfg := activeCfg
			opts := []tokenizer.Option{
				tokenizer.WithPaddingIdx(cfg.Vocab.PaddingIdx),
				tokenizer.WithWindowSize(cfg.Windowed.WindowSize),
				tokenizer.WithStride(cfg.Windowed.Stride),
				tokenizer.WithPaddingValue(cfg.Windowed.PaddingValue),
				tokenizer.WithSeed(cfg.Windowed.Seed),
			}

			var tok *tokenizer.Signal
			if derivative {
				tok, err = tokenizer.NewSignalDerivative(cfg.Vocab.NumEmbeddings, opts...)
			} else {
				tok, err = tokenizer.NewSignal(cfg.Vocab.NumEmbeddings, opts...)
			}
			if err != nil {
				return err
			}

			ids, err := tok.Call(signals)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), ids)
		},
	}

	cmd.Flags().BoolVar(&derivative, "derivative", false, "Tokenize the first difference of each signal")
	return cmd
}

func readSignals(args []string) ([][]float64, error) {
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

	var signals [][]float64
	if err := json.Unmarshal(data, &signals); err != nil {
		return nil, err
	}
	return signals, nil
}

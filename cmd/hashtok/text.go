package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hashtok-ml/hashtok/tokenizer"
)

func newTextCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "text [file]",
		Short: "Tokenize text lines into hashed token ids",
		Long: "Reads one input per line from the file argument or stdin and " +
			"prints the numerized output of each line as JSON.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(args)
			if err != nil {
				return err
			}
			logger.Debug().Int("lines", len(lines)).Str("mode", mode).Msg("tokenizing text")

			out, err := runTextMode(mode, lines)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "word", "Tokenization mode (word|ngram|char|positional|rough-positional)")
	return cmd
}

func runTextMode(mode string, lines []string) (any, error) {
	cfg := activeCfg
	opts := []tokenizer.Option{
		tokenizer.WithPaddingIdx(cfg.Vocab.PaddingIdx),
		tokenizer.WithNgrams(cfg.Text.Ngrams...),
		tokenizer.WithSkipGrams(cfg.Text.SkipGrams...),
		tokenizer.WithMaxPositional(cfg.Text.MaxPositional),
	}
	if cfg.Text.WholeWords {
		opts = append(opts, tokenizer.WithWholeWords())
	}

	switch mode {
	case "word":
		tok, err := tokenizer.NewWord(cfg.Vocab.NumEmbeddings, opts...)
		if err != nil {
			return nil, err
		}
		return tok.Call(lines)
	case "ngram":
		tok, err := tokenizer.NewNgram(cfg.Vocab.NumEmbeddings, opts...)
		if err != nil {
			return nil, err
		}
		return tok.Call(lines)
	case "char":
		tok, err := tokenizer.NewCharacter(cfg.Vocab.NumEmbeddings, opts...)
		if err != nil {
			return nil, err
		}
		return tok.Call(lines)
	case "positional":
		tok, err := tokenizer.NewPrecisePositional(cfg.Vocab.NumEmbeddings, opts...)
		if err != nil {
			return nil, err
		}
		return tok.Call(lines)
	case "rough-positional":
		tok, err := tokenizer.NewRoughPositional(cfg.Vocab.NumEmbeddings, cfg.Text.Language, opts...)
		if err != nil {
			return nil, err
		}
		return tok.Call(lines)
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

func readLines(args []string) ([]string, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	return enc.Encode(v)
}

package tokenizer

import (
	"fmt"

	"github.com/hashtok-ml/hashtok/internal/hashing"
	"github.com/hashtok-ml/hashtok/internal/parallel"
	"github.com/hashtok-ml/hashtok/internal/window"
)

func imageDefaults() options {
	return options{
		batch:        parallel.DefaultConfig(),
		windowHeight: 9,
		windowWidth:  9,
		stride:       1,
		paddingValue: 0,
		seed:         0,
	}
}

// Image tokenizes 2D matrices by sliding-window patch extraction and
// random-hyperplane hashing of each flattened patch.
type Image struct {
	quant *hashing.Projection
	ex    *window.Extractor2D
	batch parallel.Config
}

// NewImage creates an image tokenizer. Defaults: 9x9 window, stride 1,
// pad value 0, seed 0.
func NewImage(numEmbeddings int, opts ...Option) (*Image, error) {
	o := imageDefaults()
	o.apply(opts)

	ex, err := window.New2D(o.windowHeight, o.windowWidth, o.stride, o.paddingValue)
	if err != nil {
		return nil, err
	}
	quant, err := hashing.NewProjection(numEmbeddings, o.paddingIdx, o.windowHeight*o.windowWidth, o.seed)
	if err != nil {
		return nil, err
	}
	return &Image{quant: quant, ex: ex, batch: o.batch}, nil
}

// Tokenize slices the image into a patch grid of shape
// (outputHeight, outputWidth, windowHeight, windowWidth).
func (t *Image) Tokenize(img [][]float64) ([][][][]float64, error) {
	patches, err := t.ex.Slide(img)
	if err != nil {
		return nil, fmt.Errorf("image tokenizer: %w", err)
	}
	return patches, nil
}

// Numerize hashes each patch, producing an (outputHeight, outputWidth)
// id grid.
func (t *Image) Numerize(patches [][][][]float64) ([][]int, error) {
	ids := make([][]int, len(patches))
	for i, row := range patches {
		rowIDs := make([]int, len(row))
		for j, patch := range row {
			id, err := t.quant.QuantizeFlat(patch)
			if err != nil {
				return nil, fmt.Errorf("image tokenizer: %w", err)
			}
			rowIDs[j] = id
		}
		ids[i] = rowIDs
	}
	return ids, nil
}

// Call tokenizes and numerizes each image, preserving order. A failing
// image fails the whole batch.
func (t *Image) Call(images [][][]float64) ([][][]int, error) {
	return parallel.MapErr(images, t.batch, func(img [][]float64) ([][]int, error) {
		patches, err := t.Tokenize(img)
		if err != nil {
			return nil, err
		}
		return t.Numerize(patches)
	})
}

package hashing

import (
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// SpecialTokens are the reserved symbolic tokens occupying the lowest ids
// above the padding index, in order.
var SpecialTokens = []string{"<PAD>", "<CLS>", "<SEP>", "<MASK>", "<UNK>"}

// Common errors.
var (
	ErrVocabSize  = errors.New("num embeddings must exceed the reserved id range")
	ErrPaddingIdx = errors.New("padding index must be non-negative")
)

// Digest quantizes token strings via SHA3-224 feature hashing.
// It is stateless and safe for concurrent use.
type Digest struct {
	numEmbeddings int
	reserved      int
	modulus       *big.Int
}

// NewDigest creates a digest quantizer producing ids in
// [paddingIdx+len(SpecialTokens), numEmbeddings).
func NewDigest(numEmbeddings, paddingIdx int) (*Digest, error) {
	reserved, err := reservedRange(numEmbeddings, paddingIdx)
	if err != nil {
		return nil, err
	}
	return &Digest{
		numEmbeddings: numEmbeddings,
		reserved:      reserved,
		modulus:       big.NewInt(int64(numEmbeddings)),
	}, nil
}

// NumEmbeddings returns the vocabulary ceiling.
func (d *Digest) NumEmbeddings() int { return d.numEmbeddings }

// Reserved returns the first id the hashing path may produce.
func (d *Digest) Reserved() int { return d.reserved }

// Quantize maps a token to an id in [Reserved, NumEmbeddings). The mapping
// depends only on the token bytes and the construction parameters.
func (d *Digest) Quantize(token string) int {
	sum := sha3.Sum224([]byte(token))
	n := new(big.Int).SetBytes(sum[:])
	id := int(n.Mod(n, d.modulus).Int64())
	return max(id, d.reserved)
}

// reservedRange validates the vocabulary bounds shared by both quantizers.
func reservedRange(numEmbeddings, paddingIdx int) (int, error) {
	if paddingIdx < 0 {
		return 0, fmt.Errorf("%w: %d", ErrPaddingIdx, paddingIdx)
	}
	reserved := paddingIdx + len(SpecialTokens)
	if numEmbeddings <= reserved {
		return 0, fmt.Errorf("%w: num embeddings %d, reserved %d", ErrVocabSize, numEmbeddings, reserved)
	}
	return reserved, nil
}

// Package tokenizer converts raw text, signals and images into bounded
// integer token id sequences via feature hashing.
//
// Each facade composes a tokenize strategy (word segmentation, n-grams,
// characters, window extraction) with a quantizer (SHA3 digest hashing for
// strings, random-hyperplane sign hashing for numeric windows) and exposes
// the same three operations:
//   - Tokenize: raw input to an intermediate token structure
//   - Numerize: token structure to a mirroring integer structure
//   - Call: batch of raw inputs to a batch of integer structures,
//     order-preserving and parallel across items
//
// Configuration is fixed at construction and never mutated, so every
// facade is safe for concurrent use on disjoint inputs. Ids produced by
// the hashing path always lie in [paddingIdx+5, numEmbeddings); the five
// lowest ids above the padding index stay reserved for the special tokens
// <PAD>, <CLS>, <SEP>, <MASK> and <UNK>.
//
// Example usage:
//
//	tok, err := tokenizer.NewWord(10000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ids, err := tok.Call([]string{"hello world", "good morning"})
package tokenizer

// Package hashing maps tokens into a bounded integer id range without a
// learned vocabulary.
//
// Two quantizers are provided:
//   - Digest hashes a token string with SHA3-224 and reduces the digest
//     modulo the vocabulary size. Identical strings map to identical ids on
//     every platform and in every process.
//   - Projection hashes a numeric window by the signs of its dot products
//     with random Gaussian hyperplanes (a locality-sensitive hash): nearby
//     windows collide with probability increasing in their cosine
//     similarity.
//
// Both quantizers clamp results so the low id range stays reserved for the
// special tokens; the hashing path never emits a reserved id.
package hashing

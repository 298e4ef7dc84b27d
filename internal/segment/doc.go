// Package segment provides the text-splitting collaborators used by the
// tokenizer facades: a word-level segmenter and per-language syllable
// segmenters.
//
// Segmentation here is deliberately lightweight. The word segmenter uses a
// tiktoken-style splitting pattern; the syllabifiers are heuristic and
// only guarantee that the concatenation of the returned syllables
// reconstructs the word exactly.
package segment

// Package text turns raw corpus text into the normalized token stream that
// core.Graph consumes.
//
// Normalization rules:
//
//   - ASCII letters A–Z and a–z are kept and lower-cased.
//   - Every other byte (digits, punctuation, whitespace, line breaks, and any
//     byte of a multi-byte UTF-8 sequence) is a separator.
//   - Runs of separators collapse; no empty tokens are ever produced.
//
// Line breaks are ordinary separators, so the last word of one line and the
// first word of the next form a pair like any other neighbors.
//
// Example:
//
//	toks := text.TokenizeString("The scientist, carefully... analyzed 42 things!")
//	// [the scientist carefully analyzed things]
package text

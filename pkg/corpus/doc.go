// Package corpus builds word-level Markov chains from text.
//
// Each distinct word is a state and each pair of consecutive words on the same
// line is an observed transition. A word ending with a full stop is terminal,
// which also catches abbreviations such as "etc." in the middle of a sentence.
package corpus

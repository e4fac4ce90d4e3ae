// Package maskid generates and parses identifiers shaped by a character mask.
//
// A mask describes an identifier with three characters: X is a slot for one
// letter of a fixed 13-letter alphabet, 9 is a slot for one decimal digit and
// - is a literal separator reproduced verbatim. Compiling "XX-999" yields
// identifiers such as "KD-482".
//
// Identifiers produced this way have the following properties:
//   - short and easy to read out loud and retype
//   - unambiguous (the letter alphabet avoids digit lookalikes and letters
//     easily confused with each other)
//   - optionally cryptographically random, with at least 128 bits of entropy
//     enforced at compile time
//   - optionally prefixed with a rolling minute counter for collision
//     resistance over time
//
// Parsing is forgiving about presentation (case, whitespace, misplaced
// separators) and returns the canonical form, making the identifiers safe to
// dictate over the phone and re-enter by hand.
package maskid

// Package soundex implements the classic Soundex phonetic encoding.
//
// A Soundex code is a short fingerprint of how a word sounds: its first
// letter followed by digits for the consonant sound groups, so that
// "Resnik" and "Reznick" collapse to the same code.
//
// Two modes are exported:
//   - Encode: the classic 4-character code, zero-padded
//   - EncodeFull: the untruncated code (still padded to at least 4)
//
// Properties:
//   - Total: every input has a code; only the empty string encodes to ""
//   - Pure: no state is shared between calls, safe for concurrent use
//   - Unicode-aware seeding: the first alphanumeric rune in any script
//     opens the code verbatim; only ASCII letters contribute digits
//
// Vowels and the semivowels H and W contribute no digit and are
// transparent to duplicate suppression: "Ashcraft" encodes the second C
// as a repeat of S even though an H sits between them.
//
// Fold strips combining diacritical marks as an opt-in preparation step
// for accented names ("Müller" → "Muller"). Encode never folds on its
// own.
package soundex

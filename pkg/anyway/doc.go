// Package anyway implements the Anyway Encosure Scheme (AES), a reversible
// byte-to-text encoding that stores data in the formatting of the word
// "anyway", plus its escaped variant (EAES).
//
// Every byte is split into two fields, counting bits from least significant:
//
//	tail (bits 0-1): how many stars frame the word, 0 to 3
//	body (bits 2-7): the case of each of the six letters A N Y W A Y
//
// A body bit of 0 leaves its letter uppercase, 1 makes it lowercase. Body
// bit 0 drives the first letter, bit 5 the last. The byte 65 ('A') is
// 01000001 in binary: tail 01, body 010000, so it encodes as
//
//	*ANYWaY*
//
// Encoded words are joined with a separator that must not contain any of
// the characters a n y w A N Y W * \ (invalid separators silently fall back
// to ", ").
//
// # Escaped variant
//
// EAES additionally writes each framing star once more on each side,
// backslash-escaped, so the markers survive markdown renderers that would
// otherwise swallow them as emphasis (Discord, chat clients):
//
//	*ANYWaY*  ->  \**ANYWaY*\*
//
// # Decoding
//
// Decode is deliberately tolerant. It ignores every character outside the
// scheme's alphabet, skips any backslash-escaped pair, counts stars, and
// classifies letters purely by case; any six letter occurrences complete a
// byte regardless of which letters they are. This makes decoding work on
// text that was reformatted, quoted, or had escaping added around it.
package anyway

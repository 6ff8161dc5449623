package soundex

import "unicode"

// ============================================================
// Soundex Encoding
// ============================================================
//
// Consonant class table:
//   B F P V          → 1
//   C G J K Q S X Z  → 2
//   D T              → 3
//   L                → 4
//   M N              → 5
//   R                → 6
//   A E I O U Y H W  → drop (no digit, transparent to dedup)
//
// The first accepted character (the seed) is the first alphanumeric
// rune in any script, emitted verbatim with ASCII-only uppercasing.
// Its digit class still counts toward adjacent-duplicate suppression.

// minLen is the minimum code length; default mode truncates to it.
const minLen = 4

// Encode returns the 4-character Soundex code of s: the seed character
// followed by consonant class digits, zero-padded on the right.
//
// Encode("") is "". A non-empty input with no alphanumeric characters
// at all encodes to "0000".
func Encode(s string) string {
	return encode(s, false)
}

// EncodeFull returns the untruncated Soundex code of s, keeping every
// produced digit. Codes shorter than 4 characters are still zero-padded
// to 4, so EncodeFull never returns a shorter code than Encode.
func EncodeFull(s string) string {
	return encode(s, true)
}

// Equal reports whether a and b share the same 4-character code.
func Equal(a, b string) bool {
	return Encode(a) == Encode(b)
}

// EqualFull reports whether a and b share the same full code.
func EqualFull(a, b string) bool {
	return EncodeFull(a) == EncodeFull(b)
}

// encode runs the single left-to-right pass. full disables truncation.
func encode(s string, full bool) string {
	if s == "" {
		return ""
	}

	out := make([]rune, 0, minLen)
	var last byte // class of the last considered letter, 0 = none
	seeded := false
	count := 0

	for _, r := range s {
		if !seeded {
			if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
				continue
			}
			last = digitClass(r)
			out = append(out, upperASCII(r))
			seeded = true
		} else {
			cls := digitClass(r)
			// Drop characters and non-letters are skipped without
			// touching last, so repeats are caught through them.
			if !isASCIIAlpha(r) || isDrop(r) || cls == last {
				continue
			}
			last = cls
			out = append(out, rune(cls))
		}

		count++
		if !full && count == minLen {
			break
		}
	}

	for ; count < minLen; count++ {
		out = append(out, '0')
	}
	return string(out)
}

// digitClass returns the consonant class digit for r, or 0 if r has
// none. Case-insensitive; only ASCII letters carry a class.
func digitClass(r rune) byte {
	switch lowerASCII(r) {
	case 'b', 'f', 'p', 'v':
		return '1'
	case 'c', 'g', 'j', 'k', 'q', 's', 'x', 'z':
		return '2'
	case 'd', 't':
		return '3'
	case 'l':
		return '4'
	case 'm', 'n':
		return '5'
	case 'r':
		return '6'
	}
	return 0
}

// isDrop reports whether r is a vowel or semivowel (A E I O U Y H W).
func isDrop(r rune) bool {
	switch lowerASCII(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'h', 'w':
		return true
	}
	return false
}

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func lowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func upperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

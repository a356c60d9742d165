package scanner

// Character classes for parallel classification. Only whitespace and
// structural-operator bytes need their own class; every other byte
// (quotes, backslashes, digits, signs, letters, and anything else) is
// CharClassOther and is handled uniformly as a primitive byte by
// findPotentialStructurals.
const (
	CharClassOther      = 0x00
	CharClassStructural = 0x01
	CharClassWhitespace = 0x02
)

// CharClassLookup classifies every possible byte value in a single
// 256-entry table lookup (cache-friendly, no branching per byte).
var CharClassLookup = [256]uint8{
	// 0x00-0x0F
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassWhitespace, CharClassWhitespace, CharClassOther,
	CharClassOther, CharClassWhitespace, CharClassOther, CharClassOther,

	// 0x10-0x1F
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,

	// 0x20-0x2F (space !"#$%&'()*+,-./)
	CharClassWhitespace, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassStructural, CharClassOther, CharClassOther, CharClassOther,

	// 0x30-0x3F (0123456789:;<=>?)
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassStructural, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,

	// 0x40-0x4F (@ABCDEFGHIJKLMNO)
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,

	// 0x50-0x5F (PQRSTUVWXYZ[\]^_)
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassStructural,
	CharClassOther, CharClassStructural, CharClassOther, CharClassOther,

	// 0x60-0x6F (`abcdefghijklmno)
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,

	// 0x70-0x7F (pqrstuvwxyz{|}~DEL)
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassStructural,
	CharClassOther, CharClassStructural, CharClassOther, CharClassOther,

	// 0x80-0xFF (extended ASCII - all classified as other)
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
	CharClassOther, CharClassOther, CharClassOther, CharClassOther,
}

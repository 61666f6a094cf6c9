package units

import "strings"

var syllables = []string{
	"ga", "ka", "sa", "ta", "na", "ha", "ma", "ya", "ra", "wa",
	"ge", "ke", "se", "te", "ne", "he", "me", "re",
	"gi", "ki", "si", "chi", "ni", "hi", "mi", "ri",
	"go", "ko", "so", "to", "no", "ho", "mo", "yo", "ro", "wo",
	"gu", "ku", "su", "tsu", "nu", "hu", "mu", "yu", "ru",
}

// NameSyllables is the number of syllables in a generated name
const NameSyllables = 3

// Intner is the slice of a random source name generation needs.
// *math/rand.Rand satisfies it.
type Intner interface {
	Intn(n int) int
}

// RandomName joins three random syllables and capitalises the first letter.
// Names are not unique.
func RandomName(r Intner) string {
	var b strings.Builder
	for i := 0; i < NameSyllables; i++ {
		b.WriteString(syllables[r.Intn(len(syllables))])
	}
	name := b.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// Syllables returns a copy of the syllable table
func Syllables() []string {
	out := make([]string, len(syllables))
	copy(out, syllables)
	return out
}

package pronunciation

import "strings"

// tip pairs a letter sequence with its pronunciation hint.
type tip struct {
	sequence string
	text     string
}

// tips lists the common trouble spots for German learners. Order matters:
// longer sequences come first so "sch" wins over "ch".
var tips = []tip{
	{"sch", "'sch' sounds like [ʃ], as in English 'ship'"},
	{"ei", "'ei' is the diphthong [aɪ̯], like English 'eye'"},
	{"ie", "'ie' is the long vowel [iː], like 'ee' in 'see'"},
	{"eu", "'eu' is the diphthong [ɔʏ̯], roughly like 'oy' in 'boy'"},
	{"äu", "'äu' is the diphthong [ɔʏ̯], same as 'eu'"},
	{"ch", "'ch' after i, e, ä, ö, ü is the soft [ç]; after a, o, u the harder [x] as in Scottish 'loch'"},
	{"w", "'w' is pronounced [v], like English 'v'"},
	{"v", "'v' is usually [f]; in loanwords it can be [v]"},
	{"z", "'z' is the affricate [ts], like 'ts' in 'cats'"},
	{"r", "'r' is the uvular [ʁ], produced at the back of the throat"},
	{"ß", "'ß' is a voiceless [s]"},
	{"ü", "'ü' is [y]: say 'ee' while rounding your lips"},
	{"ö", "'ö' is [ø]: say 'ay' while rounding your lips"},
	{"ä", "'ä' is the open [ɛ], like 'e' in 'bed'"},
}

const defaultTip = "No special trouble spots found. Remember that German stress usually falls on the first syllable."

// Tips returns pronunciation hints for the letter sequences found in the
// text. A covered position is not matched again, so "sch" does not also
// trigger the "ch" hint.
func Tips(text string) []string {
	lower := strings.ToLower(text)
	covered := make([]bool, len(lower))
	var result []string

	for _, t := range tips {
		idx := indexUncovered(lower, t.sequence, covered)
		if idx < 0 {
			continue
		}
		for i := idx; i < idx+len(t.sequence); i++ {
			covered[i] = true
		}
		result = append(result, t.text)
	}

	if len(result) == 0 {
		result = append(result, defaultTip)
	}
	return result
}

func indexUncovered(text, sequence string, covered []bool) int {
	for start := 0; ; {
		idx := strings.Index(text[start:], sequence)
		if idx < 0 {
			return -1
		}
		offset := start + idx
		clean := true
		for i := offset; i < offset+len(sequence); i++ {
			if covered[i] {
				clean = false
				break
			}
		}
		if clean {
			return offset
		}
		start = offset + 1
	}
}

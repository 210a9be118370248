package analysis

import "strings"

// posGloss maps universal POS tags to learner-friendly names.
var posGloss = map[string]string{
	"ADJ":   "adjective",
	"ADP":   "preposition",
	"ADV":   "adverb",
	"AUX":   "auxiliary verb",
	"CCONJ": "coordinating conjunction",
	"DET":   "determiner",
	"INTJ":  "interjection",
	"NOUN":  "noun",
	"NUM":   "numeral",
	"PART":  "particle",
	"PRON":  "pronoun",
	"PROPN": "proper noun",
	"PUNCT": "punctuation",
	"SCONJ": "subordinating conjunction",
	"VERB":  "verb",
	"X":     "other",
}

// POSGloss returns the learner-friendly name for a universal POS tag.
func POSGloss(pos string) string {
	if gloss, ok := posGloss[pos]; ok {
		return gloss
	}
	return "unknown"
}

// determiners maps German articles to gender/case hints.
var determiners = map[string]string{
	"der":   "masculine nominative / feminine dative",
	"die":   "feminine or plural nominative/accusative",
	"das":   "neuter nominative/accusative",
	"den":   "masculine accusative / plural dative",
	"dem":   "masculine/neuter dative",
	"des":   "masculine/neuter genitive",
	"ein":   "masculine/neuter indefinite",
	"eine":  "feminine indefinite",
	"einen": "masculine accusative indefinite",
	"einem": "masculine/neuter dative indefinite",
	"einer": "feminine dative/genitive indefinite",
	"eines": "masculine/neuter genitive indefinite",
	"kein":  "negative article",
	"keine": "negative article (feminine/plural)",
	"mein":  "possessive, 1st person",
	"meine": "possessive, 1st person (feminine/plural)",
	"dein":  "possessive, 2nd person",
	"deine": "possessive, 2nd person (feminine/plural)",
	"sein":  "possessive, 3rd person masculine/neuter",
	"ihr":   "possessive, 3rd person feminine/plural",
	"unser": "possessive, 1st person plural",
	"euer":  "possessive, 2nd person plural",
}

// pronouns maps personal pronouns to person/number hints.
var pronouns = map[string]string{
	"ich":  "1st person singular",
	"du":   "2nd person singular",
	"er":   "3rd person singular masculine",
	"sie":  "3rd person singular feminine, or plural",
	"es":   "3rd person singular neuter",
	"wir":  "1st person plural",
	"ihr":  "2nd person plural",
	"man":  "impersonal",
	"mich": "1st person singular accusative",
	"dich": "2nd person singular accusative",
	"mir":  "1st person singular dative",
	"dir":  "2nd person singular dative",
	"uns":  "1st person plural accusative/dative",
	"euch": "2nd person plural accusative/dative",
}

// auxiliaries maps forms of sein/haben/werden to lemma and tense.
var auxiliaries = map[string]struct {
	Lemma string
	Tense string
}{
	"bin":     {"sein", "Pres"},
	"bist":    {"sein", "Pres"},
	"ist":     {"sein", "Pres"},
	"sind":    {"sein", "Pres"},
	"seid":    {"sein", "Pres"},
	"war":     {"sein", "Past"},
	"warst":   {"sein", "Past"},
	"waren":   {"sein", "Past"},
	"wart":    {"sein", "Past"},
	"habe":    {"haben", "Pres"},
	"hast":    {"haben", "Pres"},
	"hat":     {"haben", "Pres"},
	"haben":   {"haben", "Pres"},
	"habt":    {"haben", "Pres"},
	"hatte":   {"haben", "Past"},
	"hattest": {"haben", "Past"},
	"hatten":  {"haben", "Past"},
	"hattet":  {"haben", "Past"},
	"werde":   {"werden", "Pres"},
	"wirst":   {"werden", "Pres"},
	"wird":    {"werden", "Pres"},
	"werden":  {"werden", "Pres"},
	"werdet":  {"werden", "Pres"},
	"wurde":   {"werden", "Past"},
	"wurden":  {"werden", "Past"},
}

// prepositions covers common German prepositions.
var prepositions = map[string]bool{
	"in": true, "an": true, "auf": true, "aus": true, "bei": true,
	"mit": true, "nach": true, "seit": true, "von": true, "zu": true,
	"für": true, "gegen": true, "ohne": true, "um": true, "durch": true,
	"über": true, "unter": true, "vor": true, "hinter": true, "neben": true,
	"zwischen": true, "trotz": true, "während": true, "wegen": true,
}

// conjunctions maps conjunctions to their kind.
var conjunctions = map[string]string{
	"und":     "CCONJ",
	"oder":    "CCONJ",
	"aber":    "CCONJ",
	"denn":    "CCONJ",
	"sondern": "CCONJ",
	"weil":    "SCONJ",
	"dass":    "SCONJ",
	"wenn":    "SCONJ",
	"ob":      "SCONJ",
	"obwohl":  "SCONJ",
	"damit":   "SCONJ",
}

// adverbs covers common short adverbs that would otherwise look like nouns
// or verbs to the suffix heuristics.
var adverbs = map[string]bool{
	"nicht": true, "sehr": true, "auch": true, "nur": true, "schon": true,
	"noch": true, "hier": true, "dort": true, "heute": true, "gestern": true,
	"jetzt": true, "immer": true, "oft": true, "gern": true, "gerne": true,
	"bald": true, "wieder": true, "dann": true, "leider": true,
}

// nounSuffixes mark derived nouns regardless of capitalization.
var nounSuffixes = []string{"ung", "heit", "keit", "schaft", "tion", "chen", "lein"}

// isPastParticiple reports whether a word looks like a German past
// participle (ge- prefix with -t or -en ending, or common -iert forms).
func isPastParticiple(word string) bool {
	w := strings.ToLower(word)
	if strings.HasSuffix(w, "iert") {
		return true
	}
	if !strings.HasPrefix(w, "ge") || len(w) < 5 {
		return false
	}
	return strings.HasSuffix(w, "t") || strings.HasSuffix(w, "en")
}

// isPreteriteVerb reports whether a lowercase word looks like a regular
// Präteritum form (stem + te/test/ten/tet).
func isPreteriteVerb(word string) bool {
	for _, suffix := range []string{"tete", "tetest", "teten", "tetet", "te", "test", "ten", "tet"} {
		if strings.HasSuffix(word, suffix) && len(word) > len(suffix)+2 {
			// Exclude infinitives like "arbeiten" that merely end in -ten.
			if suffix == "ten" && strings.HasSuffix(word, "eiten") {
				return false
			}
			return true
		}
	}
	return false
}

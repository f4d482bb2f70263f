package extract

import "golang.org/x/text/cases"

// fold case-folds a word for caseless comparison, including accented
// letters. A fresh Caser per call keeps this safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}

// foldSet builds a lookup set keyed by case-folded strings so that
// membership tests are caseless.
func foldSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[fold(w)] = struct{}{}
	}
	return set
}

// forbiddenTitles are medical and professional titles that can never be
// a patient name and whose following word is consumed as the title
// holder's own name.
var forbiddenTitles = foldSet(
	// General titles
	"dr",
	"docteur",
	"pr",
	"professeur",
	"m",
	// Medical roles
	"interne",
	"externe",
	"chef",
	"service",
	"clinique",
	// Specialties - Mental health
	"pédopsychiatre",
	"psychiatre",
	// Specialties - General
	"pédiatre",
	"généraliste",
	"spécialiste",
	// Specialties - Surgery & Anesthesia
	"chirurgien",
	"anesthésiste",
	"réanimateur",
	// Specialties - Women's health
	"gynécologue",
	"obstétricien",
	// Specialties - Internal organs
	"cardiologue",
	"pneumologue",
	"dermatologue",
	"vénérologue",
	"ophtalmologue",
	"stomatologue",
	"urologue",
	"néphrologue",
	// Specialties - Nervous system
	"neurologue",
	"neurochirurgien",
	// Specialties - Cancer
	"cancérologue",
	"oncologue",
	// Specialties - Imaging
	"radiologue",
	"radiothérapeute",
	// Specialties - Digestive
	"gastro-entérologue",
	"hépatologue",
	// Specialties - Bones & Metabolism
	"rhumatologue",
	"endocrinologue",
	"diabétologue",
	"nutritionniste",
	// Specialties - Other
	"gériatre",
	"urgentiste",
	"légiste",
	"biologiste",
)

// feminineTitles are the feminine forms of the titles above. They are
// only consulted when feminine title support is enabled. Gender-neutral
// specialties are repeated so the set stands on its own.
var feminineTitles = foldSet(
	"doctoresse",
	"docteure",
	"professeure",
	"interne",
	"externe",
	"cheffe",
	"pédopsychiatre",
	"psychiatre",
	"pédiatre",
	"généraliste",
	"spécialiste",
	"chirurgienne",
	"anesthésiste",
	"réanimatrice",
	"gynécologue",
	"obstétricienne",
	"cardiologue",
	"pneumologue",
	"dermatologue",
	"vénérologue",
	"ophtalmologue",
	"stomatologue",
	"urologue",
	"néphrologue",
	"neurologue",
	"neurochirurgienne",
	"cancérologue",
	"oncologue",
	"radiologue",
	"radiothérapeute",
	"gastro-entérologue",
	"hépatologue",
	"rhumatologue",
	"endocrinologue",
	"diabétologue",
	"nutritionniste",
	"gériatre",
	"urgentiste",
	"légiste",
	"biologiste",
)

// allowedCapitalizedWords are honorific address terms that are
// capitalized in running text but are never part of a name.
var allowedCapitalizedWords = foldSet(
	"monsieur",
	"madame",
	"mademoiselle",
	"mr",
	"mme",
	"mlle",
	"m",
	"mde",
)

// IsForbiddenTitle reports whether word is a medical or professional
// title, optionally including the feminine forms. The comparison is
// caseless.
func IsForbiddenTitle(word string, includeFeminine bool) bool {
	folded := fold(word)
	if _, ok := forbiddenTitles[folded]; ok {
		return true
	}
	if includeFeminine {
		if _, ok := feminineTitles[folded]; ok {
			return true
		}
	}
	return false
}

// IsAllowedCapitalizedWord reports whether word is an honorific address
// term. The comparison is caseless.
func IsAllowedCapitalizedWord(word string) bool {
	_, ok := allowedCapitalizedWords[fold(word)]
	return ok
}

// EndsSentence reports whether word ends with a sentence-terminating
// punctuation mark ('.', '!' or '?').
func EndsSentence(word string) bool {
	if word == "" {
		return false
	}
	switch word[len(word)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

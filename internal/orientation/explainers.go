package orientation

import "sort"

// defaultRosterLang is always included in the eligible set: the
// cooperative's Japanese staff can deliver the orientation for any
// session language.
const defaultRosterLang = "jp"

var explainerRosters = map[string][]string{
	"vi": {"PHAM VAN THINH", "HOANG ANH NAM"},
	"id": {"PETRI SURYANI", "IMELDA SARIHUTAJULU", "FEBRI SAHRULLAH AHDIN", "MARISYA UTARI", "MOHAMMAD FARID HIDAYATULLAH", "VANESSA KOBAYASHI", "ANDI PRANATA"},
	"my": {"PYO EAINDRAY MIN", "PHYOWAI ZAW"},
	"jp": {"西野 宏", "土屋 雛子"},
	"en": {"土屋 雛子"},
}

// EligibleExplainers returns the deduplicated union of the roster for
// the session language and the default roster, sorted for stable
// display. An unknown language yields the default roster alone.
func EligibleExplainers(lang string) []string {
	seen := make(map[string]bool)
	var names []string

	for _, name := range explainerRosters[lang] {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	if lang != defaultRosterLang {
		for _, name := range explainerRosters[defaultRosterLang] {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	sort.Strings(names)
	return names
}

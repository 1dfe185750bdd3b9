package rank

// DefaultAliases maps team names as they appear in the ranking table to
// the vocabulary used by the match-results table. The two sources disagree
// on a handful of countries; joining without this mapping silently drops
// every match those teams play.
var DefaultAliases = map[string]string{
	"Czechia":        "Czech Republic",
	"IR Iran":        "Iran",
	"Korea Republic": "South Korea",
	"USA":            "United States",
}

// Normalizer rewrites team names to a single canonical form before the
// ranking join.
type Normalizer struct {
	aliases map[string]string
}

// NewNormalizer builds a Normalizer from the default alias table plus any
// extra aliases, which take precedence over the defaults.
func NewNormalizer(extra map[string]string) *Normalizer {
	aliases := make(map[string]string, len(DefaultAliases)+len(extra))
	for from, to := range DefaultAliases {
		aliases[from] = to
	}
	for from, to := range extra {
		aliases[from] = to
	}
	return &Normalizer{aliases: aliases}
}

// Canonical returns the canonical form of name, or name itself when no
// alias is registered.
func (n *Normalizer) Canonical(name string) string {
	if canonical, ok := n.aliases[name]; ok {
		return canonical
	}
	return name
}

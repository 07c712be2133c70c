package domain

import (
	"strings"
)

// DeriveKeywords builds the public keyword list from every source field an article
// may carry, in priority order: explicit keywords, SEO meta keywords, then tags.
// Matching is case-insensitive and the first spelling seen wins.
func DeriveKeywords(a Article) []string {
	var candidates []string
	candidates = append(candidates, splitKeywordList(a.Keywords)...)
	candidates = append(candidates, splitKeywordList(a.MetaKeywords)...)
	candidates = append(candidates, a.Tags...)

	seen := make(map[string]struct{}, len(candidates))
	keywords := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.Join(strings.Fields(c), " ")
		if c == "" {
			continue
		}
		folded := strings.ToLower(c)
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}
		keywords = append(keywords, c)
	}
	return keywords
}

func splitKeywordList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
}

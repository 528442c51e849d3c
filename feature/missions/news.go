package missions

import (
	"github.com/san-e/flint/core/ini"
	"github.com/san-e/flint/core/resources"
)

// NewsItem is a broadcastable news entry from news.ini. Category, Headline
// and Text are resource-text references resolved on demand. Bases lists
// every base the entry is broadcast at.
type NewsItem struct {
	Category int      `json:"category"`
	Headline int      `json:"headline"`
	Text     int      `json:"text"`
	Ranks    []string `json:"ranks,omitempty"`
	Icon     string   `json:"icon,omitempty"`
	Logo     string   `json:"logo,omitempty"`
	Audio    bool     `json:"audio"`
	Bases    []string `json:"bases"`
}

// CategoryText resolves the category description of this news item.
func (n *NewsItem) CategoryText(r resources.Resolver) (string, error) {
	return r.Lookup(n.Category)
}

// HeadlineText resolves the headline of this news item.
func (n *NewsItem) HeadlineText(r resources.Resolver) (string, error) {
	return r.Lookup(n.Headline)
}

// BodyText resolves this news item's textual content.
func (n *NewsItem) BodyText(r resources.Resolver) (string, error) {
	return r.Lookup(n.Text)
}

// FoldNews folds a flat news section stream into an index from base
// nickname to the items broadcast there. Within a section every
// multi-occurrence field collapses to its last occurrence, except base and
// rank, which stay the full ordered sequence of all occurrences. A section
// naming n bases yields n distinct copies of the item, one filed under each
// base; sections naming no base are dropped.
func FoldNews(sections []ini.Section) (map[string][]*NewsItem, error) {
	index := make(map[string][]*NewsItem)
	for i := range sections {
		sec := &sections[i]

		bases := sec.Flat("base")
		if len(bases) == 0 {
			continue
		}

		f := newFieldReader(sec)
		item := NewsItem{
			Category: f.reqInt("category"),
			Headline: f.reqInt("headline"),
			Text:     f.reqInt("text"),
			Ranks:    f.flatStrs("rank"),
			Icon:     f.optStr("icon"),
			Logo:     f.optStr("logo"),
			Audio:    f.optBool("audio"),
			Bases:    bases,
		}
		if f.err != nil {
			return nil, f.err
		}

		for _, base := range bases {
			copied := item
			index[base] = append(index[base], &copied)
		}
	}
	return index, nil
}

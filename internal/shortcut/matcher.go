// Package shortcut recognizes trailing resource prefixes in palette input.
//
// Typing "block supports !b" offers a search of the Block Editor Handbook
// for "block supports". Matching is a pure function of the input and the
// catalog, so the palette recomputes it on every keystroke.
package shortcut

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/renato0307/resourcecmd/internal/host"
	"github.com/renato0307/resourcecmd/internal/resources"
)

// MinInputLength is the shortest input that can produce a suggestion.
// Shorter input returns nothing while the user is still typing.
const MinInputLength = 3

// Suggestion is an executable resource search derived from palette input.
type Suggestion struct {
	Resource resources.Resource
	Query    string
	Label    string
	URL      string
}

// Open asks the host to open the search URL.
func (s Suggestion) Open(opener host.ResourceOpener) {
	opener.OpenExternalResource(s.URL)
}

// Match returns one suggestion per resource whose " <prefix>" ends input,
// in catalog order. Candidates with an empty residual query are dropped.
func Match(input string, catalog *resources.Catalog) []Suggestion {
	if utf8.RuneCountInString(input) < MinInputLength {
		return nil
	}

	var suggestions []Suggestion
	for _, r := range catalog.All() {
		token := " " + r.Prefix
		if !strings.HasSuffix(input, token) {
			continue
		}

		query := strings.TrimSpace(strings.TrimSuffix(input, token))
		if query == "" {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			Resource: r,
			Query:    query,
			Label:    r.CommandLabel() + `: "` + query + `"`,
			URL:      SearchURL(r, query),
		})
	}
	return suggestions
}

// SearchURL builds the resource-scoped search URL for query.
func SearchURL(r resources.Resource, query string) string {
	return r.URL + "?s=" + EncodeQuery(query)
}

// componentUnescaper undoes the escapes url.QueryEscape applies beyond
// URI-component encoding. QueryEscape turns "%" into "%25", so each of
// these sequences can only come from the character it stands for.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeQuery percent-encodes query as a URI component: spaces become %20
// and the marks !'()* are left as is.
func EncodeQuery(query string) string {
	return componentUnescaper.Replace(url.QueryEscape(query))
}

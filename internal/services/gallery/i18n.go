package gallery

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys used by the gallery page.
const (
	msgTitle    = "Icon gallery"
	msgCount    = "%d icons"
	msgExample  = "Example"
	msgName     = "Name"
	msgStandard = "16px"
	msgLarge    = "20px"
)

const (
	langParam    = "lang"
	acceptHeader = "Accept-Language"
)

var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var languageMatcher = language.NewMatcher(supportedTags)

func init() {
	pt := language.BrazilianPortuguese
	for key, msg := range map[string]string{
		msgTitle:   "Galeria de ícones",
		msgCount:   "%d ícones",
		msgExample: "Exemplo",
		msgName:    "Nome",
	} {
		if err := message.SetString(pt, key, msg); err != nil {
			panic(err)
		}
	}
}

// resolveTag picks the page language from the lang query parameter, then
// Accept-Language, then the default.
func resolveTag(r *http.Request) language.Tag {
	if r == nil {
		return supportedTags[0]
	}
	var requested []language.Tag
	if raw := strings.TrimSpace(r.URL.Query().Get(langParam)); raw != "" {
		if tag, err := language.Parse(raw); err == nil {
			requested = append(requested, tag)
		}
	}
	if accept := strings.TrimSpace(r.Header.Get(acceptHeader)); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			requested = append(requested, tags...)
		}
	}
	if len(requested) == 0 {
		return supportedTags[0]
	}
	_, index, _ := languageMatcher.Match(requested...)
	return supportedTags[index]
}

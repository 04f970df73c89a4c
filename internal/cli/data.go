package cli

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/ytget/countries/internal/dataset"
)

const flagLang = "lang"

// loadStore reads the merged file of the configured pipeline
func (a *app) loadStore() (*dataset.Store, error) {
	path := a.pipeline.MergedPath()
	store, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	if n := store.InvalidCount(); n > 0 {
		a.log.Info("Records with malformed numbers", "path", path, "count", n)
	}
	return store, nil
}

// formatter returns the number formatter for a language tag such as "es" or "en"
func formatter(lang string) (dataset.Formatter, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return dataset.Formatter{}, fmt.Errorf("invalid --%s %q: %w", flagLang, lang, err)
	}
	return dataset.NewFormatter(tag), nil
}

// noticeMessage is the terminal wording of a dataset notice
func noticeMessage(n *dataset.Notice) string {
	switch n.Code {
	case dataset.NoticeNoData:
		return "No data loaded. Run `countries fetch` and `countries merge` first."
	case dataset.NoticeNoSearchMatches:
		return fmt.Sprintf("No country name starts with %q.", n.Query)
	case dataset.NoticeNoFilterMatches:
		return "No country matches the filter."
	case dataset.NoticeNoStats:
		return "No country has a positive population."
	case dataset.NoticeNoSortColumn:
		return "Choose a column to sort by."
	default:
		return "Nothing to show."
	}
}

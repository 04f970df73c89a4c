package dataset

import (
	"errors"
	"strings"

	"github.com/ytget/countries/internal/model"
)

// Action is the last operation that produced the displayed rows
type Action int

const (
	ActionAll Action = iota
	ActionSearch
	ActionFilter
	ActionSort
)

// String returns a short name for the action
func (a Action) String() string {
	switch a {
	case ActionAll:
		return "all"
	case ActionSearch:
		return "search"
	case ActionFilter:
		return "filter"
	case ActionSort:
		return "sort"
	default:
		return "unknown"
	}
}

// View is what the table shows. It is replaced, never mutated, by handlers.
type View struct {
	Rows   []model.Country
	Query  string
	Action Action
}

// NoticeCode identifies an informational message for the user
type NoticeCode int

const (
	NoticeNoData NoticeCode = iota + 1
	NoticeNoSearchMatches
	NoticeNoFilterMatches
	NoticeNoStats
	NoticeNoSortColumn
)

// Notice is a non-error outcome the user should be told about
type Notice struct {
	Code  NoticeCode
	Query string
}

// ShowAll displays the whole dataset in current order
func ShowAll(store *Store) View {
	return View{Rows: store.Records(), Action: ActionAll}
}

// Search displays the records whose name starts with query
func Search(store *Store, query string) (View, *Notice) {
	query = strings.TrimSpace(query)
	if query == "" {
		return ShowAll(store), nil
	}

	v := View{Rows: store.Search(query), Query: query, Action: ActionSearch}
	if len(v.Rows) == 0 {
		return v, &Notice{Code: NoticeNoSearchMatches, Query: query}
	}
	return v, nil
}

// Sort reorders the store by key and redisplays it. An active search is
// re-applied over the new order; otherwise the whole dataset is shown.
func Sort(store *Store, view View, key string, descending bool) (View, *Notice, error) {
	if key == "" {
		return view, &Notice{Code: NoticeNoSortColumn}, nil
	}
	if err := store.Sort(key, descending); err != nil {
		return view, nil, err
	}

	if view.Query != "" {
		v, notice := Search(store, view.Query)
		return v, notice, nil
	}
	return View{Rows: store.Records(), Action: ActionSort}, nil, nil
}

// Filter applies the raw filter input. On error the previous view is returned
// unchanged. The active search query is cleared.
func Filter(store *Store, view View, in FilterInput) (View, *Notice, error) {
	if store.Len() == 0 {
		return view, &Notice{Code: NoticeNoData}, nil
	}

	c, err := ParseCriteria(in)
	if err != nil {
		return view, nil, err
	}
	rows, err := store.Filter(c)
	if err != nil {
		return view, nil, err
	}
	return filtered(rows)
}

// FilterExpr applies a boolean expression with the same semantics as Filter
func FilterExpr(store *Store, view View, source string) (View, *Notice, error) {
	if store.Len() == 0 {
		return view, &Notice{Code: NoticeNoData}, nil
	}

	e, err := CompileExpr(source)
	if err != nil {
		return view, nil, err
	}
	rows, err := store.FilterExpr(e)
	if err != nil {
		return view, nil, err
	}
	return filtered(rows)
}

func filtered(rows []model.Country) (View, *Notice, error) {
	v := View{Rows: rows, Action: ActionFilter}
	if len(rows) == 0 {
		return v, &Notice{Code: NoticeNoFilterMatches}, nil
	}
	return v, nil, nil
}

// ComputeStats returns the statistics, or a notice when there is nothing to summarize
func ComputeStats(store *Store) (*Stats, *Notice) {
	if store.Len() == 0 {
		return nil, &Notice{Code: NoticeNoData}
	}
	st, err := store.Stats()
	if errors.Is(err, ErrNoQualifyingRecords) {
		return nil, &Notice{Code: NoticeNoStats}
	}
	return st, nil
}

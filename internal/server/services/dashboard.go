// Package services holds the dashboard's read-only data operations: the
// summary counters and page slicing over the boot-time dataset.
package services

import (
	"github.com/dmitrijs2005/studentboard/internal/common"
	"github.com/dmitrijs2005/studentboard/internal/server/dataset"
)

// Summary holds the dashboard counters.
type Summary struct {
	Total      int `json:"total"`
	Difficulty int `json:"difficulty"`
	Psych      int `json:"psych"`
}

// Page is one window of the dataset.
type Page struct {
	Records    []dataset.Record
	Number     int
	TotalPages int
}

// SummaryRules names the fields the counters look at.
type SummaryRules struct {
	DifficultyField string
	PsychField      string
	PsychMarker     string
}

// DefaultSummaryRules returns the built-in field names.
func DefaultSummaryRules() SummaryRules {
	return SummaryRules{
		DifficultyField: common.DefaultDifficultyField,
		PsychField:      common.DefaultPsychField,
		PsychMarker:     common.DefaultPsychMarker,
	}
}

type DashboardService struct {
	data     *dataset.Dataset
	summary  Summary
	pageSize int
}

// NewDashboardService precomputes the summary; the dataset never changes
// afterwards so the counters stay valid for the process lifetime.
func NewDashboardService(data *dataset.Dataset, rules SummaryRules) *DashboardService {
	return &DashboardService{
		data:     data,
		summary:  summarize(data, rules),
		pageSize: common.PageSize,
	}
}

func (s *DashboardService) Summary() Summary {
	return s.summary
}

// TotalPages is ceil(total/pageSize), never less than 1.
func (s *DashboardService) TotalPages() int {
	n := (s.data.Len() + s.pageSize - 1) / s.pageSize
	return max(n, 1)
}

// Page returns page n (1-based). Pages past the end are empty; n < 1 yields
// common.ErrInvalidPage.
func (s *DashboardService) Page(n int) (Page, error) {
	if n < 1 {
		return Page{}, common.ErrInvalidPage
	}

	page := Page{Number: n, TotalPages: s.TotalPages()}

	// Compare in page units first so a huge n cannot overflow the offset.
	if n > page.TotalPages {
		page.Records = []dataset.Record{}
		return page, nil
	}

	from := (n - 1) * s.pageSize
	page.Records = s.data.Slice(from, from+s.pageSize)
	return page, nil
}

func summarize(data *dataset.Dataset, rules SummaryRules) Summary {
	sum := Summary{Total: data.Len()}

	data.Each(func(r dataset.Record) {
		if v, ok := r.Field(rules.DifficultyField); ok && hasDifficulty(v) {
			sum.Difficulty++
		}
		if v, ok := r.Field(rules.PsychField); ok {
			if s, isString := v.(string); isString && s == rules.PsychMarker {
				sum.Psych++
			}
		}
	})

	return sum
}

// hasDifficulty is false for null, "" and the literal string "null".
func hasDifficulty(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != "" && value != "null"
	default:
		return true
	}
}

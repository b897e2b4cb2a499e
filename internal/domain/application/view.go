package application

// Filter selects which statuses a dashboard shows. It is either FilterAll
// or one of the Status values.
type Filter string

const FilterAll Filter = "all"

// SortOrder is the applied-date ordering of a listing.
type SortOrder string

const (
	SortLatest   SortOrder = "latest"
	SortEarliest SortOrder = "earliest"
)

// Filters lists every recognized filter value, FilterAll first.
var Filters = []Filter{
	FilterAll,
	Filter(StatusApplied),
	Filter(StatusInterviewing),
	Filter(StatusOffer),
	Filter(StatusAccepted),
	Filter(StatusRejected),
}

// ParseFilter maps raw input to a Filter. Anything unrecognized is FilterAll.
func ParseFilter(s string) Filter {
	for _, f := range Filters {
		if string(f) == s {
			return f
		}
	}
	return FilterAll
}

// ParseSort maps raw input to a SortOrder. Anything unrecognized is SortLatest.
func ParseSort(s string) SortOrder {
	if SortOrder(s) == SortEarliest {
		return SortEarliest
	}
	return SortLatest
}

// Counts holds the number of records per filter value. It always has an
// entry for every value in Filters.
type Counts map[Filter]int

// View is what a dashboard renders.
type View struct {
	Visible []Application
	Counts  Counts
}

// DeriveView filters records by status, preserving their order, and counts
// records per status over the unfiltered input. It has no side effects and
// does not modify records.
func DeriveView(records []Application, filter Filter) View {
	filter = ParseFilter(string(filter))

	counts := make(Counts, len(Filters))
	for _, f := range Filters {
		counts[f] = 0
	}

	visible := make([]Application, 0, len(records))
	for _, r := range records {
		counts[FilterAll]++
		counts[Filter(r.Status)]++

		if filter == FilterAll || Filter(r.Status) == filter {
			visible = append(visible, r)
		}
	}

	return View{
		Visible: visible,
		Counts:  counts,
	}
}

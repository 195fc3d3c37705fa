// Package timeline selects dated records from sparse monthly timelines, either by an
// inclusive month range or as the record in effect at a donation date.
package timeline

import (
	"github.com/SscSPs/impact_api/internal/core/domain"
)

// Filter restricts a selection to records it returns true for.
type Filter[T domain.DatedRecord] func(T) bool

// All is the pass-through filter, used for record types without groups.
func All[T domain.DatedRecord]() Filter[T] {
	return func(T) bool { return true }
}

// ByGroup matches records whose group key equals key.
func ByGroup[T domain.DatedRecord](key string) Filter[T] {
	return func(r T) bool { return r.GroupKey() == key }
}

// GroupFilters returns one ByGroup filter per key, in key order.
func GroupFilters[T domain.DatedRecord](keys []string) []Filter[T] {
	filters := make([]Filter[T], len(keys))
	for i, k := range keys {
		filters[i] = ByGroup[T](k)
	}
	return filters
}

// SelectByRange returns every record accepted by extra whose stamp lies within spec,
// in input order. A nil extra accepts everything. The result is never nil.
func SelectByRange[T domain.DatedRecord](records []T, spec domain.RangeSpec, extra Filter[T]) []T {
	selected := make([]T, 0)
	for _, r := range records {
		if extra != nil && !extra(r) {
			continue
		}
		if spec.Contains(r.StartYearMonth()) {
			selected = append(selected, r)
		}
	}
	return selected
}

// SelectByDonationDate returns, for each group filter in order, the latest record of
// that group stamped at or before the donation month. Groups without a qualifying
// record contribute nothing. Records sharing a group's maximal stamp are assumed not
// to exist; the first one encountered wins.
func SelectByDonationDate[T domain.DatedRecord](records []T, spec domain.DonationSpec, groups []Filter[T]) []T {
	selected := make([]T, 0, len(groups))
	for _, group := range groups {
		if latest, ok := latestQualifying(records, spec, group); ok {
			selected = append(selected, latest)
		}
	}
	return selected
}

func latestQualifying[T domain.DatedRecord](records []T, spec domain.DonationSpec, group Filter[T]) (T, bool) {
	var (
		best  T
		found bool
	)
	for _, r := range records {
		if group != nil && !group(r) {
			continue
		}
		ym := r.StartYearMonth()
		if !spec.Qualifies(ym) {
			continue
		}
		if !found || ym.Compare(best.StartYearMonth()) > 0 {
			best, found = r, true
		}
	}
	return best, found
}

// Select dispatches on the date selection mode. In range mode extra restricts the records; in
// donation mode groups splits them into timelines (pass All for ungrouped records).
func Select[T domain.DatedRecord](records []T, spec domain.DateSpec, extra Filter[T], groups []Filter[T]) []T {
	if spec.IsDonation() {
		return SelectByDonationDate(records, *spec.Donation, groups)
	}
	if spec.Range == nil {
		return make([]T, 0)
	}
	return SelectByRange(records, *spec.Range, extra)
}

// InGroups matches records whose group key is one of keys. No keys matches everything.
func InGroups[T domain.DatedRecord](keys []string) Filter[T] {
	if len(keys) == 0 {
		return All[T]()
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return func(r T) bool {
		_, ok := set[r.GroupKey()]
		return ok
	}
}

// Package analytics turns raw bookkeeping records into dashboard figures.
// The functions here do no I/O; callers pass in the current day.
package analytics

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
)

// Preset is a named window measured backward from today.
type Preset string

const (
	PresetAll         Preset = "all"
	PresetLast7Days   Preset = "last-7-days"
	PresetLast1Month  Preset = "last-1-month"
	PresetLast3Months Preset = "last-3-months"
)

// ParsePreset validates a preset name. The empty string means PresetAll.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case "":
		return PresetAll, nil
	case PresetAll, PresetLast7Days, PresetLast1Month, PresetLast3Months:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown date range %q", apperrors.ErrValidation, s)
	}
}

// Range is a closed interval of days, both ends included.
type Range struct{ From, To domain.Day }

// Contains reports whether d lies within the range, boundaries included.
func (r Range) Contains(d domain.Day) bool { return !d.Before(r.From) && !d.After(r.To) }

// Window describes the requested period: either a preset or explicit bounds.
// When both From and To are set they take precedence over Preset.
type Window struct {
	Preset Preset
	From   *domain.Day
	To     *domain.Day
}

// Resolve turns the window into a concrete range relative to today.
// bounded is false for PresetAll, in which case r is meaningless.
func (w Window) Resolve(today domain.Day) (r Range, bounded bool, err error) {
	switch {
	case w.From != nil && w.To != nil:
		if w.From.After(*w.To) {
			return Range{}, false, fmt.Errorf("%w: from date %s is after to date %s", apperrors.ErrValidation, w.From, w.To)
		}
		return Range{From: *w.From, To: *w.To}, true, nil
	case w.From != nil || w.To != nil:
		return Range{}, false, fmt.Errorf("%w: a custom range needs both from and to dates", apperrors.ErrValidation)
	}

	switch w.Preset {
	case "", PresetAll:
		return Range{}, false, nil
	case PresetLast7Days:
		return Range{From: today.AddDays(-7), To: today}, true, nil
	case PresetLast1Month:
		return Range{From: today.AddMonths(-1), To: today}, true, nil
	case PresetLast3Months:
		return Range{From: today.AddMonths(-3), To: today}, true, nil
	default:
		return Range{}, false, fmt.Errorf("%w: unknown date range %q", apperrors.ErrValidation, w.Preset)
	}
}

// Dated is implemented by every record the filter can narrow.
type Dated interface {
	RecordDate() domain.Day
	Deleted() bool
}

// Filter returns the non-deleted records whose date lies inside the window.
// Input order is preserved.
func Filter[T Dated](records []T, w Window, today domain.Day) ([]T, error) {
	r, bounded, err := w.Resolve(today)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if rec.Deleted() {
			continue
		}
		if bounded && !r.Contains(rec.RecordDate()) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// SortMostRecentFirst orders records by date, newest first. Records on the
// same day keep their relative order.
func SortMostRecentFirst[T Dated](records []T) {
	slices.SortStableFunc(records, func(a, b T) int {
		return cmp.Compare(b.RecordDate().Time().Unix(), a.RecordDate().Time().Unix())
	})
}

// live drops soft-deleted records.
func live[T Dated](records []T) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if !rec.Deleted() {
			out = append(out, rec)
		}
	}
	return out
}

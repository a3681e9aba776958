package event

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// ROption returns the recurrence rule for a recurring spec. Exact dates
// have no rule.
func (d DateSpec) ROption() (rrule.ROption, bool) {
	switch d.Kind {
	case EveryDay:
		return rrule.ROption{Freq: rrule.DAILY}, true
	case EveryMonth:
		return rrule.ROption{Freq: rrule.MONTHLY, Bymonthday: []int{d.Day}}, true
	case EveryYear:
		return rrule.ROption{Freq: rrule.YEARLY, Bymonth: []int{int(d.Month)}, Bymonthday: []int{d.Day}}, true
	default:
		return rrule.ROption{}, false
	}
}

// Next returns the first date on or after from's day that d falls
// on, at midnight in from's location.
func (d DateSpec) Next(from time.Time) (time.Time, bool) {
	y, m, dd := from.Date()
	start := time.Date(y, m, dd, 0, 0, 0, 0, from.Location())

	opt, ok := d.ROption()
	if !ok {
		exact := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, from.Location())
		if exact.Before(start) {
			return time.Time{}, false
		}
		return exact, true
	}

	opt.Dtstart = start
	r, err := rrule.NewRRule(opt)
	if err != nil {
		return time.Time{}, false
	}
	next := r.After(start, true)
	if next.IsZero() {
		return time.Time{}, false
	}
	return next, true
}

// FromROption maps a recurrence rule starting at dtstart onto a DateSpec.
// Only plain daily, monthly and yearly rules are representable.
func FromROption(opt *rrule.ROption, dtstart time.Time) (DateSpec, error) {
	if opt.Interval > 1 || opt.Count > 0 || !opt.Until.IsZero() || len(opt.Byweekday) > 0 ||
		len(opt.Bymonthday) > 1 || len(opt.Bymonth) > 1 {
		return DateSpec{}, fmt.Errorf("%w: unsupported recurrence %s", ErrFormat, opt.RRuleString())
	}
	month, day := dtstart.Month(), dtstart.Day()
	if len(opt.Bymonthday) == 1 {
		day = opt.Bymonthday[0]
	}
	if len(opt.Bymonth) == 1 {
		month = time.Month(opt.Bymonth[0])
	}

	var spec DateSpec
	switch opt.Freq {
	case rrule.DAILY:
		return Daily(), nil
	case rrule.MONTHLY:
		spec = Monthly(day)
	case rrule.YEARLY:
		spec = Yearly(month, day)
	default:
		return DateSpec{}, fmt.Errorf("%w: unsupported recurrence %s", ErrFormat, opt.RRuleString())
	}
	if err := spec.Validate(); err != nil {
		return DateSpec{}, err
	}
	return spec, nil
}

package domain

import "fmt"

// Weekday is a canonical day-of-week name. Comparisons and range expansion
// always use Monday-first order, never lexical string order.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var weekOrder = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday accepts exactly one of the seven canonical names,
// case-sensitive.
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range weekOrder {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid day of week: %q", s)
}

// ParseWeekdays parses a list of day tokens. A single invalid token fails
// the whole list.
func ParseWeekdays(tokens []string) ([]Weekday, error) {
	days := make([]Weekday, 0, len(tokens))
	for _, tok := range tokens {
		d, err := ParseWeekday(tok)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// Index returns the position of d in Monday-first order, 0 through 6.
// Unknown values return -1.
func (d Weekday) Index() int {
	for i, w := range weekOrder {
		if w == d {
			return i
		}
	}
	return -1
}

// WeekdayRange expands an inclusive range into canonical Monday-first order.
// A range given end-before-start (e.g. Friday to Monday) is normalized by
// swapping the bounds, so the result is always ascending.
func WeekdayRange(start, end Weekday) []Weekday {
	lo, hi := start.Index(), end.Index()
	if lo < 0 || hi < 0 {
		return nil
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	out := make([]Weekday, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, weekOrder[i])
	}
	return out
}

// WeekdayStrings converts a day list into plain strings for query binding.
func WeekdayStrings(days []Weekday) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = string(d)
	}
	return out
}

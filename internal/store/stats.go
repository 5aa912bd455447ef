package store

import (
	"math"
	"slices"
)

// EngagementTotals summarizes the whole message collection.
type EngagementTotals struct {
	Total   int
	Viewed  int
	Clicked int
}

// DayStats aggregates the messages of one calendar day of the current month.
type DayStats struct {
	Day     int
	Sent    int
	Viewed  int
	Clicked int
}

// EngagementTotals counts sent, viewed and clicked messages.
func (s *Store) EngagementTotals() EngagementTotals {
	t := EngagementTotals{Total: len(s.messages)}
	for _, m := range s.messages {
		if m.Viewed {
			t.Viewed++
		}
		if m.Clicked {
			t.Clicked++
		}
	}
	return t
}

// ViewRate returns viewed/total as a rounded percentage, 0 when there are
// no messages.
func (s *Store) ViewRate() int {
	t := s.EngagementTotals()
	return roundedPercent(t.Viewed, t.Total)
}

// ClickRate returns clicked/viewed as a rounded percentage, 0 when no
// message has been viewed.
func (s *Store) ClickRate() int {
	t := s.EngagementTotals()
	return roundedPercent(t.Clicked, t.Viewed)
}

// MessagesByDay aggregates the current month's messages per calendar day.
// Only days having at least one message appear, in ascending day order.
func (s *Store) MessagesByDay() []DayStats {
	byDay := make(map[int]*DayStats)

	for _, m := range s.MonthlyMessages() {
		day := m.SentDate.Day()
		d, ok := byDay[day]
		if !ok {
			d = &DayStats{Day: day}
			byDay[day] = d
		}
		d.Sent++
		if m.Viewed {
			d.Viewed++
		}
		if m.Clicked {
			d.Clicked++
		}
	}

	result := make([]DayStats, 0, len(byDay))
	for _, d := range byDay {
		result = append(result, *d)
	}
	slices.SortFunc(result, func(a, b DayStats) int { return a.Day - b.Day })
	return result
}

func roundedPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

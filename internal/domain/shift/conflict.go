package shift

import (
	"fmt"
	"time"
)

// Conflict is a detected scheduling problem. Conflicts are computed on
// demand over a bounded window and never persisted.
type Conflict struct {
	ShiftID      string   `json:"shift_id"`
	OtherShiftID string   `json:"other_shift_id,omitempty"`
	StaffID      string   `json:"staff_id"`
	Type         Type     `json:"type"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
}

type Type string

const (
	TypeOverlap      Type = "overlap"
	TypeAvailability Type = "availability"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// DetectConflicts reports double-bookings among the given shifts: for every
// pair of non-cancelled shifts belonging to the same staff member whose
// [start, end) intervals overlap, one overlap conflict is emitted.
//
// Pairwise comparison is quadratic in shift count, which is fine for the
// intended window of one tenant-week. Revisit with a sweep line if windows
// ever grow to thousands of shifts.
func DetectConflicts(shifts []Shift) []Conflict {
	active := make([]Shift, 0, len(shifts))
	for _, s := range shifts {
		if s.Status != StatusCancelled {
			active = append(active, s)
		}
	}

	var conflicts []Conflict
	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			a, b := active[i], active[j]
			if a.StaffID != b.StaffID {
				continue
			}
			if !overlaps(a, b) {
				continue
			}
			conflicts = append(conflicts, Conflict{
				ShiftID:      a.ID,
				OtherShiftID: b.ID,
				StaffID:      a.StaffID,
				Type:         TypeOverlap,
				Severity:     SeverityError,
				Message:      fmt.Sprintf("shift %s overlaps shift %s for the same staff member", a.ID, b.ID),
			})
		}
	}
	return conflicts
}

// overlaps reports whether two half-open intervals [start, end) intersect.
// Touching boundaries (one ends exactly when the other starts) do not count.
func overlaps(a, b Shift) bool {
	return a.StartTime.Before(b.EndTime) && a.EndTime.After(b.StartTime)
}

// DetectAvailabilityConflicts reports shifts that fall outside the staff
// member's availability calendar. These are advisory warnings and never
// block scheduling. Staff with no availability windows at all are treated
// as unrestricted.
func DetectAvailabilityConflicts(shifts []Shift, availability []AvailabilityWindow) []Conflict {
	byStaff := make(map[string][]AvailabilityWindow)
	for _, w := range availability {
		byStaff[w.StaffID] = append(byStaff[w.StaffID], w)
	}

	var conflicts []Conflict
	for _, s := range shifts {
		if s.Status == StatusCancelled {
			continue
		}
		windows, ok := byStaff[s.StaffID]
		if !ok {
			continue
		}
		if withinAvailability(s, windows) {
			continue
		}
		conflicts = append(conflicts, Conflict{
			ShiftID:  s.ID,
			StaffID:  s.StaffID,
			Type:     TypeAvailability,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("shift %s falls outside the staff member's availability", s.ID),
		})
	}
	return conflicts
}

func withinAvailability(s Shift, windows []AvailabilityWindow) bool {
	day := s.StartTime.Weekday()
	startMin := s.StartTime.Hour()*60 + s.StartTime.Minute()
	endMin := s.EndTime.Hour()*60 + s.EndTime.Minute()
	// Overnight shifts never fit a single same-day window.
	if !sameDate(s.StartTime, s.EndTime) {
		return false
	}
	for _, w := range windows {
		if w.DayOfWeek == day && w.StartMinutes <= startMin && endMin <= w.EndMinutes {
			return true
		}
	}
	return false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

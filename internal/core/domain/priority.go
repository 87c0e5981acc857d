package domain

import "time"

const day = 24 * time.Hour

// DuePriority maps how far a due date sits from today onto an urgency
// tier: 0 is due today or overdue, 3 is five or more days out. The day
// difference is rounded up, so any portion of a day counts as a full one.
func DuePriority(today, dueDate time.Time) int {
	days := int(ceilDiv(dueDate.Sub(today), day))

	// The tier table is keyed on the number of whole days after today.
	switch d := days - 1; {
	case d <= 0:
		return 0
	case d <= 2:
		return 1
	case d <= 4:
		return 2
	default:
		return 3
	}
}

func ceilDiv(d, unit time.Duration) int64 {
	q := int64(d / unit)
	if d%unit > 0 {
		q++
	}
	return q
}

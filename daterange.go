package rates

import "time"

// StampLayout is the reference layout for DateStamp values.
const StampLayout = "02.01.2006"

const (
	MinShift = 0
	MaxShift = 10
)

func NewDateStamp(t time.Time) DateStamp {
	return DateStamp(t.Format(StampLayout))
}

func ValidateShift(shift int) error {
	if shift < MinShift || shift > MaxShift {
		return ErrShiftOutOfRange
	}

	return nil
}

// DateRange returns shift stamps counting back from now: now, now-1 day
// and so on. A shift of zero yields an empty range.
func DateRange(now time.Time, shift int) []DateStamp {
	stamps := make([]DateStamp, 0, shift)

	for i := 0; i < shift; i++ {
		stamps = append(stamps, NewDateStamp(now.AddDate(0, 0, -i)))
	}

	return stamps
}

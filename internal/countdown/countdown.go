// Package countdown derives the remaining delivery time of an assigned
// question and keeps a per-question ticking clock.
package countdown

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/a2sh3r/mindflex/internal/apperrors"
)

// Parse converts a delivery time such as "3 hours" or "2 days" into the
// countdown budget. The budget is one second short of the full span so the
// first displayed value is e.g. 02:59:59.
func Parse(deliveryTime string) (time.Duration, error) {
	parts := strings.Fields(strings.ToLower(deliveryTime))
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidDeliveryTimeFormat, deliveryTime)
	}

	n, err := strconv.Atoi(parts[0])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidDeliveryTimeFormat, deliveryTime)
	}

	var unit time.Duration
	switch parts[1] {
	case "day", "days", "d":
		unit = 24 * time.Hour
	case "hour", "hours", "hr", "hrs", "h":
		unit = time.Hour
	default:
		return 0, fmt.Errorf("%w: unknown unit %q", apperrors.ErrInvalidDeliveryTimeFormat, parts[1])
	}

	return time.Duration(n)*unit - time.Second, nil
}

// Clock is a remaining duration broken into hours, minutes and seconds.
// Hours are not capped at 24.
type Clock struct {
	Hours   int
	Minutes int
	Seconds int
}

func FromDuration(d time.Duration) Clock {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return Clock{
		Hours:   total / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}

func (c Clock) Duration() time.Duration {
	return time.Duration(c.Hours)*time.Hour + time.Duration(c.Minutes)*time.Minute + time.Duration(c.Seconds)*time.Second
}

func (c Clock) IsZero() bool {
	return c.Hours == 0 && c.Minutes == 0 && c.Seconds == 0
}

// String formats the clock as HH:MM:SS.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

// Display formats the clock the way tutors see it.
func (c Clock) Display() string {
	return fmt.Sprintf("%02d hours %02d min %02d sec", c.Hours, c.Minutes, c.Seconds)
}

// Encode returns the checkpoint form h:m:s.
func (c Clock) Encode() string {
	return fmt.Sprintf("%d:%d:%d", c.Hours, c.Minutes, c.Seconds)
}

// Decode parses a checkpoint written by Encode.
func Decode(s string) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Clock{}, fmt.Errorf("%w: checkpoint %q", apperrors.ErrInvalidFormat, s)
	}
	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return Clock{}, fmt.Errorf("%w: checkpoint %q", apperrors.ErrInvalidFormat, s)
		}
		vals[i] = v
	}
	if vals[1] > 59 || vals[2] > 59 {
		return Clock{}, fmt.Errorf("%w: checkpoint %q", apperrors.ErrInvalidFormat, s)
	}
	return Clock{Hours: vals[0], Minutes: vals[1], Seconds: vals[2]}, nil
}

// Remaining derives the clock from the assignment time when no checkpoint is
// available. Partial seconds count as a full second.
func Remaining(budget time.Duration, assignedAt, now time.Time) Clock {
	rem := budget - now.Sub(assignedAt)
	if rem > 0 {
		rem = (rem + time.Second - 1) / time.Second * time.Second
	}
	return FromDuration(rem)
}

package services

import (
	"time"

	"github.com/Minhaj-beep/teer-api/internal/models"
)

// The business runs on Indian Standard Time regardless of where the server
// is deployed, and ticket updates stop 5 minutes before the draw.
var istZone = time.FixedZone("IST", 5*3600+1800)

const updateCutoffMargin = 5 * time.Minute

// DrawInstant combines a game's calendar date and "HH:MM" draw time into the
// absolute draw instant in IST.
func DrawInstant(g *models.Game) (time.Time, error) {
	clock, err := time.Parse("15:04", g.Time)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "time", Reason: "must be HH:MM"}
	}
	d := g.Date.In(istZone)
	return time.Date(d.Year(), d.Month(), d.Day(), clock.Hour(), clock.Minute(), 0, 0, istZone), nil
}

// CheckUpdateWindow permits a ticket mutation only while now is strictly
// before drawInstant - 5m. The rejection side is inclusive: a request landing
// exactly on the cutoff is refused.
func CheckUpdateWindow(now time.Time, g *models.Game) error {
	drawAt, err := DrawInstant(g)
	if err != nil {
		return err
	}
	cutoff := drawAt.Add(-updateCutoffMargin)
	if !now.Before(cutoff) {
		return &WindowClosedError{DrawAt: drawAt, Remaining: drawAt.Sub(now)}
	}
	return nil
}

// startOfDay normalizes an instant to IST calendar midnight.
func startOfDay(t time.Time) time.Time {
	d := t.In(istZone)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, istZone)
}

package export

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/tripfolio/backend/internal/dates"
	"github.com/tripfolio/backend/internal/models"
)

// ICS renders one all-day VEVENT per item whose day index maps to a
// calendar date through the trip's start date. When the trip has no
// start date there is nothing to map, so the calendar is valid but
// empty; such items still appear in the CSV export.
//
// DTSTAMP is derived from the trip's creation time rather than the
// render time so repeated exports of unchanged data are byte-identical.
func ICS(trip *models.Trip, items []models.ItemView) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//tripfolio//itinerary//EN")
	cal.SetXWRCalName(trip.Name)

	stamp := time.Unix(trip.CreatedAt, 0).UTC()

	if trip.StartDate != "" {
		for _, item := range items {
			if item.Day < 1 {
				continue
			}
			date, err := dates.DateForDay(trip.StartDate, item.Day)
			if err != nil {
				return nil, fmt.Errorf("failed to map day %d: %w", item.Day, err)
			}

			event := cal.AddEvent(fmt.Sprintf("%s@tripfolio", item.ID))
			event.SetDtStampTime(stamp)
			event.SetAllDayStartAt(date)
			event.SetAllDayEndAt(date.AddDate(0, 0, 1))
			event.SetSummary(item.Name)
			if item.Note != "" {
				event.SetDescription(item.Note)
			}
		}
	}

	return []byte(cal.Serialize()), nil
}

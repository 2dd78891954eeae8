package domain

import (
	"strings"

	"github.com/uniplan/uniplan/internal/platform/errors"
)

// ParseSchedule parses the compact weekly-schedule notation into slots.
//
// The input is a comma-separated list of pieces shaped like
// "Mon@09:00-10:30 Room201": day, "@", start, "-", end, then an optional
// location after the first space. Parsing is all-or-nothing: any bad piece
// fails the whole call. Empty input yields an empty slice.
func ParseSchedule(text string) ([]ScheduleSlot, error) {
	slots := []ScheduleSlot{}
	for _, piece := range strings.Split(text, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}

		location := ""
		if i := strings.Index(piece, " "); i >= 0 {
			location = strings.TrimSpace(piece[i+1:])
			piece = piece[:i]
		}

		dayAndTimes := strings.Split(piece, "@")
		if len(dayAndTimes) != 2 {
			return nil, badPiece()
		}
		day := strings.TrimSpace(dayAndTimes[0])
		if !IsWeekday(day) {
			return nil, errors.WithMetadata(errors.CodeValidationUnknownWeekday,
				"unknown weekday "+day+" in schedule",
				map[string]string{"Day": day, "Valid": WeekdayList()})
		}

		times := strings.Split(dayAndTimes[1], "-")
		if len(times) != 2 {
			return nil, badPiece()
		}

		slots = append(slots, ScheduleSlot{
			Day:      day,
			Start:    strings.TrimSpace(times[0]),
			End:      strings.TrimSpace(times[1]),
			Location: location,
		})
	}
	return slots, nil
}

// FormatSchedule renders slots back to the textual notation accepted by
// ParseSchedule, so stored schedules can pre-fill edit forms.
func FormatSchedule(slots []ScheduleSlot) string {
	parts := make([]string, 0, len(slots))
	for _, slot := range slots {
		part := slot.Day + "@" + slot.Start + "-" + slot.End
		if slot.Location != "" {
			part += " " + slot.Location
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ",")
}

func badPiece() error {
	return errors.New(errors.CodeValidationBadSchedule,
		"bad schedule piece, example: Mon@09:00-10:30")
}

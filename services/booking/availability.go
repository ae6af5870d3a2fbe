package booking

import (
	"fmt"
	"strings"
	"time"

	"labport/models"
)

// TimeSlots is the published daily list of 1-hour booking windows. It is
// identical across all labs and days; the gap after "12:00 PM - 01:00 PM"
// is the labs' midday closure.
var TimeSlots = []string{
	"08:00 AM - 09:00 AM",
	"09:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 01:00 PM",
	"02:00 PM - 03:00 PM",
	"03:00 PM - 04:00 PM",
	"04:00 PM - 05:00 PM",
	"05:00 PM - 06:00 PM",
	"06:00 PM - 07:00 PM",
	"07:00 PM - 08:00 PM",
	"08:00 PM - 09:00 PM",
}

// leadTimeBuffer is the minimum gap between "now" and the earliest bookable
// slot on the current day.
const leadTimeBuffer = 3 * time.Hour

const dateLayout = "2006-01-02"

// IsPublishedSlot reports whether the slot label is in the daily list.
func IsPublishedSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// ParseSlotStart returns a slot's start as minutes from midnight.
func ParseSlotStart(slot string) (int, error) {
	startLabel, _, found := strings.Cut(slot, " - ")
	if !found {
		return 0, fmt.Errorf("malformed slot %q", slot)
	}
	t, err := time.Parse("03:04 PM", startLabel)
	if err != nil {
		return 0, fmt.Errorf("malformed slot start %q: %w", startLabel, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsSlotAvailable determines bookability of a day/slot pair under the
// lead-time rule: any slot on a future day is open; on the current day a
// slot is open only if its start is strictly after ref plus the buffer;
// past days are never open.
func IsSlotAvailable(date, slot string, ref time.Time) bool {
	today := ref.Format(dateLayout)
	if date > today {
		return true
	}
	if date < today {
		return false
	}

	startMinutes, err := ParseSlotStart(slot)
	if err != nil {
		return false
	}
	dayStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	slotStart := dayStart.Add(time.Duration(startMinutes) * time.Minute)
	return slotStart.After(ref.Add(leadTimeBuffer))
}

// NextSevenDays produces the scheduling window: the calendar day of ref
// through six days ahead, each with a sortable date key and localized
// display fields.
func NextSevenDays(ref time.Time, lang models.Language) []models.Day {
	days := make([]models.Day, 0, 7)
	for i := 0; i < 7; i++ {
		d := ref.AddDate(0, 0, i)
		days = append(days, models.Day{
			FullDate:  d.Format(dateLayout),
			DayName:   localizedDayName(d, lang),
			DayNumber: localizedNumber(d.Day(), lang),
			Month:     localizedMonth(d, lang),
		})
	}
	return days
}

// PickDefaultDay scans the window in order and returns the first day with
// at least one open slot. When no day qualifies it falls back to the first
// day; confirmation then stays blocked until the user picks an open slot.
func PickDefaultDay(days []models.Day, slots []string, ref time.Time) models.Day {
	for _, day := range days {
		for _, slot := range slots {
			if IsSlotAvailable(day.FullDate, slot, ref) {
				return day
			}
		}
	}
	return days[0]
}

// BuildSlotViews pairs every published slot with its availability for the
// given date.
func BuildSlotViews(date string, ref time.Time) []models.SlotView {
	views := make([]models.SlotView, 0, len(TimeSlots))
	for _, slot := range TimeSlots {
		views = append(views, models.SlotView{
			Slot:      slot,
			Available: IsSlotAvailable(date, slot, ref),
		})
	}
	return views
}

var banglaWeekdays = [7]string{"রবি", "সোম", "মঙ্গল", "বুধ", "বৃহঃ", "শুক্র", "শনি"}

var banglaMonths = [12]string{
	"জানু", "ফেব্রু", "মার্চ", "এপ্রিল", "মে", "জুন",
	"জুলাই", "আগস্ট", "সেপ্টে", "অক্টো", "নভে", "ডিসে",
}

var banglaDigits = [10]rune{'০', '১', '২', '৩', '৪', '৫', '৬', '৭', '৮', '৯'}

func localizedDayName(d time.Time, lang models.Language) string {
	if lang == models.LangBangla {
		return banglaWeekdays[int(d.Weekday())]
	}
	return d.Format("Mon")
}

func localizedMonth(d time.Time, lang models.Language) string {
	if lang == models.LangBangla {
		return banglaMonths[int(d.Month())-1]
	}
	return d.Format("Jan")
}

func localizedNumber(n int, lang models.Language) string {
	if lang != models.LangBangla {
		return fmt.Sprintf("%d", n)
	}
	var sb strings.Builder
	for _, r := range fmt.Sprintf("%d", n) {
		sb.WriteRune(banglaDigits[r-'0'])
	}
	return sb.String()
}

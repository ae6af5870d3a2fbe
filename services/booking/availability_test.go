package booking

import (
	"testing"
	"time"

	"labport/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlotStart(t *testing.T) {
	minutes, err := ParseSlotStart("08:00 AM - 09:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 8*60, minutes)

	minutes, err = ParseSlotStart("08:00 PM - 09:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 20*60, minutes)

	_, err = ParseSlotStart("whenever")
	assert.Error(t, err)
}

func TestIsSlotAvailableFutureAndPastDays(t *testing.T) {
	ref := time.Date(2024, 3, 22, 19, 30, 0, 0, time.UTC)

	assert.True(t, IsSlotAvailable("2024-03-23", "08:00 AM - 09:00 AM", ref))
	assert.False(t, IsSlotAvailable("2024-03-21", "08:00 PM - 09:00 PM", ref))
}

func TestIsSlotAvailableSameDayBuffer(t *testing.T) {
	// 19:30 plus the 3-hour buffer passes the last slot of the day.
	ref := time.Date(2024, 3, 22, 19, 30, 0, 0, time.UTC)
	assert.False(t, IsSlotAvailable("2024-03-22", "08:00 PM - 09:00 PM", ref))
	assert.True(t, IsSlotAvailable("2024-03-23", "08:00 PM - 09:00 PM", ref))

	// A slot starting exactly at ref+3h is not bookable.
	ref = time.Date(2024, 3, 22, 17, 0, 0, 0, time.UTC)
	assert.False(t, IsSlotAvailable("2024-03-22", "08:00 PM - 09:00 PM", ref))

	ref = time.Date(2024, 3, 22, 16, 59, 0, 0, time.UTC)
	assert.True(t, IsSlotAvailable("2024-03-22", "08:00 PM - 09:00 PM", ref))
}

func TestNextSevenDaysWindow(t *testing.T) {
	ref := time.Date(2024, 3, 22, 10, 0, 0, 0, time.UTC)
	days := NextSevenDays(ref, models.LangEnglish)

	require.Len(t, days, 7)
	assert.Equal(t, "2024-03-22", days[0].FullDate)
	assert.Equal(t, "2024-03-28", days[6].FullDate)
	for i := 1; i < len(days); i++ {
		assert.Greater(t, days[i].FullDate, days[i-1].FullDate)
	}
	assert.Equal(t, "Fri", days[0].DayName)
	assert.Equal(t, "Mar", days[0].Month)
	assert.Equal(t, "22", days[0].DayNumber)
}

func TestNextSevenDaysBanglaLocalization(t *testing.T) {
	ref := time.Date(2024, 3, 22, 10, 0, 0, 0, time.UTC)
	days := NextSevenDays(ref, models.LangBangla)

	require.Len(t, days, 7)
	assert.Equal(t, "শুক্র", days[0].DayName)
	assert.Equal(t, "মার্চ", days[0].Month)
	assert.Equal(t, "২২", days[0].DayNumber)
}

func TestPickDefaultDaySkipsExhaustedToday(t *testing.T) {
	// Late evening: every remaining slot today is inside the buffer.
	ref := time.Date(2024, 3, 22, 23, 0, 0, 0, time.UTC)
	days := NextSevenDays(ref, models.LangEnglish)

	picked := PickDefaultDay(days, TimeSlots, ref)
	assert.Equal(t, "2024-03-23", picked.FullDate)
}

func TestPickDefaultDayPrefersToday(t *testing.T) {
	ref := time.Date(2024, 3, 22, 8, 0, 0, 0, time.UTC)
	days := NextSevenDays(ref, models.LangEnglish)

	picked := PickDefaultDay(days, TimeSlots, ref)
	assert.Equal(t, "2024-03-22", picked.FullDate)
}

func TestBuildSlotViews(t *testing.T) {
	ref := time.Date(2024, 3, 22, 10, 30, 0, 0, time.UTC)
	views := BuildSlotViews("2024-03-22", ref)

	require.Len(t, views, len(TimeSlots))
	byLabel := make(map[string]bool, len(views))
	for _, v := range views {
		byLabel[v.Slot] = v.Available
	}
	// 10:30 + 3h buffer: 01:00 PM window closed, 02:00 PM open.
	assert.False(t, byLabel["12:00 PM - 01:00 PM"])
	assert.True(t, byLabel["02:00 PM - 03:00 PM"])
	assert.True(t, byLabel["08:00 PM - 09:00 PM"])
	assert.False(t, byLabel["08:00 AM - 09:00 AM"])
}

func TestIsPublishedSlot(t *testing.T) {
	assert.True(t, IsPublishedSlot("08:00 AM - 09:00 AM"))
	assert.False(t, IsPublishedSlot("01:00 PM - 02:00 PM"))
}

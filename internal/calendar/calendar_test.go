package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/bank-status-service/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func names(holidays []domain.Holiday) []string {
	out := make([]string, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, h.Name)
	}
	return out
}

func TestHolidaysOn_FixedDate(t *testing.T) {
	c := New()

	assert.Equal(t, []string{"New Year's Day"}, names(c.HolidaysOn(day(2015, time.January, 1), []domain.RegionTag{RegionUS})))
	assert.Equal(t, []string{"Independence Day"}, names(c.HolidaysOn(day(2015, time.July, 4), []domain.RegionTag{RegionUS})))
	assert.Equal(t, []string{"Veterans Day"}, names(c.HolidaysOn(day(2015, time.November, 11), []domain.RegionTag{RegionUS})))
	assert.Equal(t, []string{"Christmas Day"}, names(c.HolidaysOn(day(2015, time.December, 25), []domain.RegionTag{RegionUS})))
}

func TestHolidaysOn_FloatingDate(t *testing.T) {
	c := New()

	// 2015: MLK Jan 19 (3rd Monday), Presidents' Feb 16, Memorial May 25
	// (last Monday), Labor Sep 7, Columbus Oct 12, Thanksgiving Nov 26.
	assert.Equal(t, []string{"Martin Luther King, Jr. Day"}, names(c.HolidaysOn(day(2015, time.January, 19), []domain.RegionTag{RegionUS})))
	assert.Equal(t, []string{"Presidents' Day"}, names(c.HolidaysOn(day(2015, time.February, 16), []domain.RegionTag{RegionUS})))
	assert.Equal(t, []string{"Memorial Day"}, names(c.HolidaysOn(day(2015, time.May, 25), []domain.RegionTag{RegionUS})))
	assert.Equal(t, []string{"Labor Day"}, names(c.HolidaysOn(day(2015, time.September, 7), []domain.RegionTag{RegionUS})))
	assert.Equal(t, []string{"Columbus Day"}, names(c.HolidaysOn(day(2015, time.October, 12), []domain.RegionTag{RegionUS})))
	assert.Equal(t, []string{"Thanksgiving"}, names(c.HolidaysOn(day(2015, time.November, 26), []domain.RegionTag{RegionUS})))
}

func TestHolidaysOn_EmptyDay(t *testing.T) {
	c := New()

	assert.Empty(t, c.HolidaysOn(day(2015, time.March, 3), []domain.RegionTag{RegionUS, RegionUSDC}))
}

func TestHolidaysOn_InaugurationDay(t *testing.T) {
	c := New()

	// DC-area holiday, only in years following a presidential election.
	got := c.HolidaysOn(day(2017, time.January, 20), []domain.RegionTag{RegionUSDC})
	require.Len(t, got, 1)
	assert.Equal(t, "Inauguration Day", got[0].Name)

	assert.Empty(t, c.HolidaysOn(day(2017, time.January, 20), []domain.RegionTag{RegionUS}))
	assert.Empty(t, c.HolidaysOn(day(2018, time.January, 20), []domain.RegionTag{RegionUSDC}))
}

func TestHolidaysOn_EmancipationDayIsDCOnly(t *testing.T) {
	c := New()

	assert.Equal(t, []string{"Emancipation Day"}, names(c.HolidaysOn(day(2015, time.April, 16), []domain.RegionTag{RegionUSDC})))
	assert.Empty(t, c.HolidaysOn(day(2015, time.April, 16), []domain.RegionTag{RegionUS}))
}

func TestHolidaysOn_JuneteenthStartYear(t *testing.T) {
	c := New()

	assert.Equal(t, []string{"Juneteenth National Independence Day"}, names(c.HolidaysOn(day(2021, time.June, 19), []domain.RegionTag{RegionUS})))
	assert.Empty(t, c.HolidaysOn(day(2019, time.June, 19), []domain.RegionTag{RegionUS}))
}

func TestHolidaysOn_DeduplicatesAcrossRegions(t *testing.T) {
	c := New()

	// The DC table inherits the federal holidays; querying both regions
	// must not list them twice.
	got := c.HolidaysOn(day(2015, time.January, 1), []domain.RegionTag{RegionUS, RegionUSDC})
	assert.Equal(t, []string{"New Year's Day"}, names(got))
}

func TestHolidaysOn_UnknownRegion(t *testing.T) {
	c := New()

	assert.Empty(t, c.HolidaysOn(day(2015, time.January, 1), []domain.RegionTag{"nl"}))
}

func TestHolidaysOn_IgnoresTimeOfDayAndZone(t *testing.T) {
	c := New()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	late := time.Date(2015, time.July, 4, 23, 30, 0, 0, loc)

	assert.Equal(t, []string{"Independence Day"}, names(c.HolidaysOn(late, []domain.RegionTag{RegionUS})))
}

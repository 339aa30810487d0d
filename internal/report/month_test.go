package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "2026-02", want: "2026-02"},
		{name: "december", input: "2025-12", want: "2025-12"},
		{name: "full date rejected", input: "2026-02-01", wantErr: true},
		{name: "garbage rejected", input: "February", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestMonth_AddDate(t *testing.T) {
	tests := []struct {
		name   string
		start  Month
		months int
		want   string
	}{
		{name: "forward within year", start: NewMonth(2026, time.March), months: 2, want: "2026-05"},
		{name: "backward across year boundary", start: NewMonth(2026, time.January), months: -1, want: "2025-12"},
		{name: "five months back", start: NewMonth(2026, time.February), months: -5, want: "2025-09"},
		{name: "zero is identity", start: NewMonth(2026, time.July), months: 0, want: "2026-07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.AddDate(0, tt.months).String())
		})
	}
}

func TestMonth_StartEnd(t *testing.T) {
	tests := []struct {
		name  string
		month Month
		start string
		end   string
	}{
		{name: "thirty one days", month: NewMonth(2026, time.January), start: "2026-01-01", end: "2026-01-31"},
		{name: "february", month: NewMonth(2026, time.February), start: "2026-02-01", end: "2026-02-28"},
		{name: "leap february", month: NewMonth(2028, time.February), start: "2028-02-01", end: "2028-02-29"},
		{name: "thirty days", month: NewMonth(2026, time.April), start: "2026-04-01", end: "2026-04-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.start, tt.month.Start().Format("2006-01-02"))
			assert.Equal(t, tt.end, tt.month.End().Format("2006-01-02"))
		})
	}
}

func TestMonthOf(t *testing.T) {
	date := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	month := MonthOf(date)
	assert.Equal(t, "2026-08", month.String())
	assert.True(t, month.Equal(NewMonth(2026, time.August)))
}

func TestMonth_Before(t *testing.T) {
	assert.True(t, NewMonth(2025, time.December).Before(NewMonth(2026, time.January)))
	assert.False(t, NewMonth(2026, time.January).Before(NewMonth(2026, time.January)))
	assert.False(t, NewMonth(2026, time.February).Before(NewMonth(2026, time.January)))
}

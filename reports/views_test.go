package reports_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jbarros/go-timeclock-server/reports"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{seconds: 0, want: "00:00:00"},
		{seconds: 59, want: "00:00:59"},
		{seconds: 3600, want: "01:00:00"},
		{seconds: 3661, want: "01:01:01"},
		{seconds: 29100, want: "08:05:00"},
		{seconds: 97205, want: "27:00:05"}, // beyond 24h stays in hours
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			formatted := reports.FormatDuration(tt.seconds)
			require.Equal(t, tt.want, formatted)

			// HH:MM:SS must round-trip to the same whole seconds.
			parts := strings.Split(formatted, ":")
			require.Len(t, parts, 3)
			h, _ := strconv.ParseInt(parts[0], 10, 64)
			m, _ := strconv.ParseInt(parts[1], 10, 64)
			s, _ := strconv.ParseInt(parts[2], 10, 64)
			require.Equal(t, tt.seconds, h*3600+m*60+s)
		})
	}
}

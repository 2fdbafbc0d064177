package httpapi

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryInt(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		fallback int
		want     int
	}{
		{name: "present", url: "/reports/route-revenue?top=5", fallback: 10, want: 5},
		{name: "absent", url: "/reports/route-revenue", fallback: 10, want: 10},
		{name: "garbage", url: "/reports/route-revenue?top=abc", fallback: 10, want: 10},
		{name: "negative passes through", url: "/reports/route-revenue?top=-3", fallback: 10, want: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			assert.Equal(t, tt.want, queryInt(r, "top", tt.fallback))
		})
	}
}

func TestQueryFloat(t *testing.T) {
	r := httptest.NewRequest("GET", "/reports/overweight-baggage?limitKg=23.5", nil)
	assert.Equal(t, 23.5, queryFloat(r, "limitKg", 0))

	r = httptest.NewRequest("GET", "/reports/overweight-baggage", nil)
	assert.Equal(t, 0.0, queryFloat(r, "limitKg", 0))
}

func TestQueryTime(t *testing.T) {
	fallback := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		url  string
		want time.Time
	}{
		{
			name: "rfc3339",
			url:  "/reports/on-time?from=2026-08-20T10:30:00Z",
			want: time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "plain date",
			url:  "/reports/on-time?from=2026-08-20",
			want: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		},
		{name: "absent", url: "/reports/on-time", want: fallback},
		{name: "unparseable", url: "/reports/on-time?from=yesterday", want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			assert.Equal(t, tt.want, queryTime(r, "from", fallback))
		})
	}
}

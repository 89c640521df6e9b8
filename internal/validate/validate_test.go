package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-02-29", true}, // leap year
		{"2023-02-29", false},
		{"2024-02-30", false},
		{"2024-13-01", false},
		{"2024-00-10", false},
		{"2024-01-00", false},
		{"2024-1-01", false},
		{"2024/01/01", false},
		{"20240101", false},
		{"", false},
		{"not-a-date", false},
		{"2024-01-01 ", false},
		{"2024-12-31", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Date(tt.in), "Date(%q)", tt.in)
	}
}

func TestMonth(t *testing.T) {
	assert.True(t, Month("2024-02"))
	assert.True(t, Month("2024-12"))
	assert.False(t, Month("2024-13"))
	assert.False(t, Month("2024-00"))
	assert.False(t, Month("2024-2"))
	assert.False(t, Month("2024-02-01"))
	assert.False(t, Month(""))
}

func TestMinutes(t *testing.T) {
	assert.False(t, Minutes(0))
	assert.False(t, Minutes(-10))
	assert.True(t, Minutes(1))
	assert.True(t, Minutes(480))
	assert.True(t, Minutes(1440))
	assert.False(t, Minutes(1441))
}

func TestProjectName(t *testing.T) {
	assert.False(t, ProjectName(""))
	assert.False(t, ProjectName("   "))
	assert.True(t, ProjectName("Internal"))
	assert.True(t, ProjectName("  padded  "))
	assert.True(t, ProjectName(strings.Repeat("a", 100)))
	assert.False(t, ProjectName(strings.Repeat("a", 101)))
}

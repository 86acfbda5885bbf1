package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "2024-01-10", Normalize("2024-01-10"))
	assert.Equal(t, "2024-01-10", Normalize("2024-01-10T08:30:00Z"))
	assert.Equal(t, "2024-01-10", Normalize("2024-01-10 08:30:00"))
	assert.Equal(t, "2024-01-10", Normalize("  2024-01-10  "))
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("not-a-date"))
}

func TestNormalizeOrDefault(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-10", NormalizeOrDefault("2024-01-10", asOf))
	assert.Equal(t, "2025-06-15", NormalizeOrDefault("", asOf))
	assert.Equal(t, "2025-06-15", NormalizeOrDefault("garbage", asOf))
}

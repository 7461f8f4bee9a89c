package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngagementOf_Thresholds(t *testing.T) {
	assert.Equal(t, EngagementLow, EngagementOf(0, 0))
	assert.Equal(t, EngagementLow, EngagementOf(100, 0))
	assert.Equal(t, EngagementMedium, EngagementOf(101, 0))
	assert.Equal(t, EngagementMedium, EngagementOf(50, 30))
	assert.Equal(t, EngagementMedium, EngagementOf(1000, 0))
	assert.Equal(t, EngagementHigh, EngagementOf(1001, 0))
	assert.Equal(t, EngagementHigh, EngagementOf(200, 401))
}

func TestEngagementOf_NegativeScore(t *testing.T) {
	assert.Equal(t, EngagementLow, EngagementOf(-500, 10))
}

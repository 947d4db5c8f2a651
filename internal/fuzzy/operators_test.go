package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperators(t *testing.T) {
	assert.Equal(t, 0.3, And(0.3, 0.7))
	assert.Equal(t, 0.7, Or(0.3, 0.7))
	assert.InDelta(t, 0.4, Not(0.6), 1e-9)
	assert.InDelta(t, 0.7, Implication(0.3, 0.2), 1e-9)
	assert.InDelta(t, 0.9, Implication(0.8, 0.9), 1e-9)
}

func TestMembership(t *testing.T) {
	assert.Zero(t, Membership(0.1, 0.2, 0.8))
	assert.Equal(t, 1.0, Membership(0.9, 0.2, 0.8))
	assert.InDelta(t, 0.5, Membership(0.5, 0.2, 0.8), 1e-9)
}

func TestCentroid(t *testing.T) {
	points := []MembershipPoint{
		{Value: 0.0, Membership: 1.0},
		{Value: 1.0, Membership: 1.0},
	}
	assert.InDelta(t, 0.5, Centroid(points), 1e-9)

	assert.Zero(t, Centroid(nil))
	assert.Zero(t, Centroid([]MembershipPoint{{Value: 0.4, Membership: 0}}))
}

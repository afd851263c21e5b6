package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHuberLossQuadraticRegion(t *testing.T) {
	delta := 0.05
	for _, r := range []float64{0, 0.01, -0.03, 0.05, -0.05} {
		assert.InDelta(t, 0.5*r*r, HuberLoss(r, delta), 1e-15)
	}
}

func TestHuberLossBranchesAgreeAtDelta(t *testing.T) {
	delta := 0.05
	// Both the quadratic and the linear branch evaluate to 0.5·delta² at
	// |r| = delta; the loss is continuous there.
	quadratic := 0.5 * delta * delta
	linear := delta * (delta - 0.5*delta)
	assert.Equal(t, quadratic, linear)
	assert.InDelta(t, quadratic, HuberLoss(delta, delta), 1e-15)
	assert.InDelta(t, quadratic, HuberLoss(-delta, delta), 1e-15)
}

func TestHuberLossLinearBeyondDelta(t *testing.T) {
	delta := 0.05
	assert.InDelta(t, delta*(0.2-0.5*delta), HuberLoss(0.2, delta), 1e-15)
	assert.InDelta(t, delta*(0.2-0.5*delta), HuberLoss(-0.2, delta), 1e-15)

	// Linear growth damps outliers relative to squared loss.
	assert.Less(t, HuberLoss(0.5, delta), SquaredLoss(0.5))
}

func TestLossSelectionByName(t *testing.T) {
	delta := 0.05
	r := 0.3

	huber := lossFor("huber", delta)
	assert.Equal(t, HuberLoss(r, delta), huber(r))

	// Every other name falls back to squared loss, including legacy names
	// and typos.
	for _, name := range []string{"hill", "ols", "", "HUBER", "unknown"} {
		selected := lossFor(name, delta)
		assert.Equal(t, SquaredLoss(r), selected(r), "name %q must select squared loss", name)
	}
}

package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirepath/earnings-engine/internal/domain"
)

func TestSolveHoursForNetHitsKnownSchedule(t *testing.T) {
	engine := NewEngine(testReference(t))

	// At 40 regular hours in testville-zz the net weekly pay is
	// 545.19, so the solver should land on a 40-hour week.
	solved, err := engine.SolveHoursForNet(
		"warehouse-associate", "testville-zz", d("545.19"), DefaultSolverOptions())
	require.NoError(t, err)

	assert.True(t, solved.Hours.Sub(d("40")).Abs().LessThan(d("0.05")),
		"expected ~40 hours, got %s", solved.Hours)
	diff := solved.Result.NetWeekly.Sub(d("545.19")).Abs()
	assert.True(t, diff.LessThanOrEqual(d("0.50")),
		"net weekly %s misses target by %s", solved.Result.NetWeekly, diff)
}

func TestSolveHoursForNetMonotone(t *testing.T) {
	engine := NewEngine(testReference(t))

	low, err := engine.SolveHoursForNet(
		"warehouse-associate", "testville-zz", d("300"), DefaultSolverOptions())
	require.NoError(t, err)
	high, err := engine.SolveHoursForNet(
		"warehouse-associate", "testville-zz", d("600"), DefaultSolverOptions())
	require.NoError(t, err)

	assert.True(t, low.Hours.LessThan(high.Hours),
		"higher target should need more hours: %s vs %s", low.Hours, high.Hours)
}

func TestSolveHoursForNetUnreachableTarget(t *testing.T) {
	engine := NewEngine(testReference(t))

	_, err := engine.SolveHoursForNet(
		"warehouse-associate", "testville-zz", d("100000"), DefaultSolverOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSolveHoursForNetRejectsBadInput(t *testing.T) {
	engine := NewEngine(testReference(t))

	_, err := engine.SolveHoursForNet(
		"warehouse-associate", "testville-zz", d("-50"), DefaultSolverOptions())
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = engine.SolveHoursForNet(
		"warehouse-associate", "nowhere-xx", d("500"), DefaultSolverOptions())
	assert.ErrorIs(t, err, domain.ErrUnknownCity)
}
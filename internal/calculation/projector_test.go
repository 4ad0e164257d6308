package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirepath/earnings-engine/internal/domain"
)

var (
	regularRule = domain.ShiftDifferentialRule{ID: "regular", AppliesTo: "regular", Multiplier: d("1.0")}
	nightRule   = domain.ShiftDifferentialRule{ID: "night", AppliesTo: "night", Multiplier: d("1.10")}
	hazardRule  = domain.ShiftDifferentialRule{ID: "hazard", AppliesTo: "hazard", AddOn: d("1.50")}
)

func TestProjectFlatFortyHourWeek(t *testing.T) {
	// 40 hours at the localized midpoint 17.575 with no differentials.
	proj, err := Project(d("17.575"), d("40"),
		[]ResolvedSegment{{Rule: regularRule, Hours: d("40")}},
		domain.DefaultOvertimeRule())
	require.NoError(t, err)
	assert.True(t, proj.GrossWeekly.Equal(d("703.00")), "got %s", proj.GrossWeekly)
	assert.True(t, proj.GrossAnnual.Equal(d("36556.00")), "got %s", proj.GrossAnnual)
}

func TestProjectOvertimeSplit(t *testing.T) {
	// 30 + 15 hours at 18/hr with a 40-hour threshold: 5 hours land in
	// the overtime region and bill at 1.5 x 18 = 27.
	proj, err := Project(d("18"), d("45"),
		[]ResolvedSegment{
			{Rule: regularRule, Hours: d("30")},
			{Rule: regularRule, Hours: d("15")},
		},
		domain.DefaultOvertimeRule())
	require.NoError(t, err)

	// 30x18 + 10x18 + 5x27 = 855
	assert.True(t, proj.GrossWeekly.Equal(d("855.00")), "got %s", proj.GrossWeekly)
	assert.True(t, proj.GrossAnnual.Equal(d("44460.00")), "got %s", proj.GrossAnnual)
}

func TestProjectOvertimeFollowsDeclarationOrder(t *testing.T) {
	// 38 night hours declared before 10 regular hours: the regular
	// segment absorbs the overtime region, not the pricier night one.
	proj, err := Project(d("20"), d("48"),
		[]ResolvedSegment{
			{Rule: nightRule, Hours: d("38")},
			{Rule: regularRule, Hours: d("10")},
		},
		domain.DefaultOvertimeRule())
	require.NoError(t, err)

	// 38x22 + 2x20 + 8x30 = 836 + 40 + 240 = 1116
	assert.True(t, proj.GrossWeekly.Equal(d("1116.00")), "got %s", proj.GrossWeekly)

	// Same hours declared in the opposite order give a different gross:
	// 10x20 + 30x22 + 8x33 = 200 + 660 + 264 = 1124
	flipped, err := Project(d("20"), d("48"),
		[]ResolvedSegment{
			{Rule: regularRule, Hours: d("10")},
			{Rule: nightRule, Hours: d("38")},
		},
		domain.DefaultOvertimeRule())
	require.NoError(t, err)
	assert.True(t, flipped.GrossWeekly.Equal(d("1124.00")), "got %s", flipped.GrossWeekly)
}

func TestProjectAddOnDifferential(t *testing.T) {
	proj, err := Project(d("18"), d("20"),
		[]ResolvedSegment{{Rule: hazardRule, Hours: d("20")}},
		domain.DefaultOvertimeRule())
	require.NoError(t, err)
	// 20 x (18 + 1.50) = 390
	assert.True(t, proj.GrossWeekly.Equal(d("390.00")), "got %s", proj.GrossWeekly)
}

func TestProjectZeroHours(t *testing.T) {
	proj, err := Project(d("18"), d("0"), nil, domain.DefaultOvertimeRule())
	require.NoError(t, err)
	assert.True(t, proj.GrossWeekly.IsZero())
	assert.True(t, proj.GrossAnnual.IsZero())
}

func TestProjectRejectsBadSchedules(t *testing.T) {
	_, err := Project(d("18"), d("-1"), nil, domain.DefaultOvertimeRule())
	assert.ErrorIs(t, err, domain.ErrInvalidSchedule)

	_, err = Project(d("18"), d("40"),
		[]ResolvedSegment{{Rule: regularRule, Hours: d("30")}},
		domain.DefaultOvertimeRule())
	assert.ErrorIs(t, err, domain.ErrInvalidSchedule, "mix must reconcile with declared hours")

	_, err = Project(d("18"), d("10"),
		[]ResolvedSegment{
			{Rule: regularRule, Hours: d("20")},
			{Rule: nightRule, Hours: d("-10")},
		},
		domain.DefaultOvertimeRule())
	assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
}

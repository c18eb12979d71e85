package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which summary chips are abbreviated.
	LayoutCompactWidth = 80

	// LayoutPanelWidth is the widest a content panel grows.
	LayoutPanelWidth = 72
)

// Content limits.
const (
	// RecentRideLimit is how many rides the Today view lists.
	RecentRideLimit = 3

	// FormWidth is the width of the entry form and prompt modals.
	FormWidth = 44
)

// DayRolloverInterval is how often the model re-derives stats so the Today
// view follows the calendar past midnight.
const DayRolloverInterval = time.Minute

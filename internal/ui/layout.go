package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which tab labels are dropped
	// and only icons and numbers are shown.
	LayoutCompactWidth = 60
)

// chromeHeight is the number of rows used by the header, tab bar and
// footer around the screen panel.
const chromeHeight = 3

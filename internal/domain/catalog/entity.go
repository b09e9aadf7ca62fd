package catalog

import "time"

// Icon is the closed set of icons the marketing site can render.
// Unknown values resolve to IconDefault instead of failing.
type Icon string

const (
	IconDefault   Icon = "default"
	IconCode      Icon = "code"
	IconDesign    Icon = "design"
	IconMarketing Icon = "marketing"
	IconCloud     Icon = "cloud"
	IconSupport   Icon = "support"
	IconAnalytics Icon = "analytics"
)

var knownIcons = map[Icon]struct{}{
	IconDefault:   {},
	IconCode:      {},
	IconDesign:    {},
	IconMarketing: {},
	IconCloud:     {},
	IconSupport:   {},
	IconAnalytics: {},
}

// ParseIcon maps a raw string onto the closed icon set.
func ParseIcon(s string) Icon {
	icon := Icon(s)
	if _, ok := knownIcons[icon]; ok {
		return icon
	}
	return IconDefault
}

type ServiceEntry struct {
	ID        string
	Title     string
	Summary   string
	Icon      Icon
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

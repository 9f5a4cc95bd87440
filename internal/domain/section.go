package domain

// settings section
type Section int

const (
	SectionGeneral Section = iota
	SectionConnections
	SectionSecurity
	SectionAppearance
	SectionShortcuts
	SectionNotifications
	SectionLabels
)

// DefaultSection is used when no section is named.
const DefaultSection = SectionGeneral

// Sections returns every section in navigation order.
func Sections() []Section {
	return []Section{
		SectionGeneral,
		SectionConnections,
		SectionSecurity,
		SectionAppearance,
		SectionShortcuts,
		SectionNotifications,
		SectionLabels,
	}
}

// Key is the route segment for the section.
func (s Section) Key() string {
	switch s {
	case SectionGeneral:
		return "general"
	case SectionConnections:
		return "connections"
	case SectionSecurity:
		return "security"
	case SectionAppearance:
		return "appearance"
	case SectionShortcuts:
		return "shortcuts"
	case SectionNotifications:
		return "notifications"
	case SectionLabels:
		return "labels"
	}
	return ""
}

func (s Section) String() string {
	return s.Key()
}

// SectionKeys returns the route segments of all sections.
func SectionKeys() []string {
	sections := Sections()
	keys := make([]string, len(sections))
	for i, s := range sections {
		keys[i] = s.Key()
	}
	return keys
}

// ParseSection matches a route segment exactly (case-sensitive).
func ParseSection(key string) (Section, bool) {
	for _, s := range Sections() {
		if s.Key() == key {
			return s, true
		}
	}
	return 0, false
}

// Next returns the following section, wrapping around.
func (s Section) Next() Section {
	all := Sections()
	return all[(int(s)+1)%len(all)]
}

// Prev returns the preceding section, wrapping around.
func (s Section) Prev() Section {
	all := Sections()
	return all[(int(s)-1+len(all))%len(all)]
}

// Package skill holds the fixed role taxonomy shared by the talent skill
// picker and job-side filtering. The category and role strings are used as
// literal filter and display values; changing them breaks persisted data.
package skill

import (
	"fmt"
	"strings"
)

type Category struct {
	Name  string
	Roles []string
}

var taxonomy = []Category{
	{
		Name: "Hospitality & Guest Services",
		Roles: []string{
			"Event Host/Hostess",
			"Usher",
			"Registration Staff",
			"Concierge Staff",
			"Guest List Coordinator",
			"Coat Check Attendant",
		},
	},
	{
		Name: "Catering & Food Service",
		Roles: []string{
			"Banquet Server",
			"Bartender",
			"Barback",
			"Catering Chef",
			"Food Runner",
			"Busser",
		},
	},
	{
		Name: "Promotional & Brand Activation",
		Roles: []string{
			"Brand Ambassador",
			"Promotional Model",
			"Product Demonstrator",
			"Street Team Member",
			"Sampling Staff",
		},
	},
	{
		Name: "Corporate Events & Conferences",
		Roles: []string{
			"Conference Assistant",
			"Booth Staff",
			"Lead Generation Staff",
			"Interpreter/Translator",
			"Presentation Assistant",
		},
	},
	{
		Name: "Technical & Production",
		Roles: []string{
			"Audio Technician",
			"Lighting Technician",
			"Stagehand",
			"Rigger",
			"Video Operator",
			"Production Assistant",
		},
	},
	{
		Name: "Security & Safety",
		Roles: []string{
			"Event Security Guard",
			"Crowd Control Staff",
			"Door Supervisor",
			"First Aid Attendant",
		},
	},
	{
		Name: "Entertainment & Performance",
		Roles: []string{
			"DJ",
			"Live Musician",
			"Dancer",
			"Emcee/MC",
			"Magician",
			"Costumed Character",
		},
	},
	{
		Name: "Logistics & Operations",
		Roles: []string{
			"Event Setup Crew",
			"Teardown Crew",
			"Runner",
			"Parking Attendant",
			"Inventory Coordinator",
			"Transportation Coordinator",
		},
	},
}

var roleSet = buildRoleSet()

func buildRoleSet() map[string]struct{} {
	s := make(map[string]struct{})
	for _, c := range taxonomy {
		for _, r := range c.Roles {
			s[r] = struct{}{}
		}
	}
	return s
}

// Taxonomy returns the closed category/role enumeration in display order.
func Taxonomy() []Category {
	out := make([]Category, len(taxonomy))
	for i, c := range taxonomy {
		roles := make([]string, len(c.Roles))
		copy(roles, c.Roles)
		out[i] = Category{Name: c.Name, Roles: roles}
	}
	return out
}

func IsValidRole(name string) bool {
	_, ok := roleSet[name]
	return ok
}

// ValidateRoles reports the first role not present in the taxonomy.
// Comparison is exact: the taxonomy strings are canonical.
func ValidateRoles(roles []string) error {
	for _, r := range roles {
		if strings.TrimSpace(r) != r || !IsValidRole(r) {
			return fmt.Errorf("unknown skill %q", r)
		}
	}
	return nil
}

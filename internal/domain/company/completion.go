package company

import "strings"

// CompletionCheck is one item of the profile-completion checklist, in the
// fixed order the profile page groups them.
type CompletionCheck struct {
	Label string
	Done  bool
}

// CompletionScore grades a profile against the fixed 9-item checklist and
// returns the percentage plus the per-item breakdown. Name and type count
// as separate items; the billing check is always false for now since
// neither payment methods nor verification documents are persisted yet.
// Pure function of the snapshot.
func CompletionScore(p Profile) (float64, []CompletionCheck) {
	checks := []CompletionCheck{
		{Label: "Company logo", Done: hasRealLogo(p.LogoURL)},
		{Label: "Company name", Done: p.Name != ""},
		{Label: "Company type", Done: p.Type != ""},
		{Label: "Description", Done: p.Description != ""},
		{Label: "Contact email and phone", Done: p.Email != "" && p.Phone != ""},
		{Label: "Website", Done: p.Website != ""},
		{Label: "City and state", Done: p.City != "" && p.State != ""},
		{Label: "Social media link", Done: p.Facebook != "" || p.Twitter != "" || p.Instagram != "" || p.LinkedIn != ""},
		{Label: "Payment and verification documents", Done: false},
	}

	done := 0
	for _, c := range checks {
		if c.Done {
			done++
		}
	}
	return float64(done) / float64(len(checks)) * 100, checks
}

func hasRealLogo(url string) bool {
	if url == "" {
		return false
	}
	return !strings.Contains(strings.ToLower(url), "placeholder")
}

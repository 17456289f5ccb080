package company

import "testing"

func fullProfile() Profile {
	return Profile{
		Name:        "Apex Events",
		Type:        "Event Agency",
		LogoURL:     "https://cdn.example.com/logos/apex.png",
		Website:     "https://apexevents.example",
		Email:       "hello@apexevents.example",
		Phone:       "+1 555 0100",
		Description: "Full-service event staffing.",
		City:        "Austin",
		State:       "TX",
		LinkedIn:    "https://linkedin.com/company/apex",
	}
}

func TestCompletionScoreEmptyProfile(t *testing.T) {
	score, checks := CompletionScore(Profile{})
	if score != 0 {
		t.Fatalf("empty profile score = %v, want 0", score)
	}
	if len(checks) != 9 {
		t.Fatalf("len(checks) = %d, want 9", len(checks))
	}
	for _, c := range checks {
		if c.Done {
			t.Errorf("check %q done on empty profile", c.Label)
		}
	}
}

func TestCompletionScoreFullProfileCapped(t *testing.T) {
	score, checks := CompletionScore(fullProfile())

	// The payment and documents check is never satisfiable, so a maximal
	// profile stops at 8/9.
	want := 100.0 * 8 / 9
	if diff := score - want; diff > 0.001 || diff < -0.001 {
		t.Fatalf("full profile score = %v, want %v", score, want)
	}
	for _, c := range checks {
		switch c.Label {
		case "Payment and verification documents":
			if c.Done {
				t.Errorf("check %q must stay false", c.Label)
			}
		default:
			if !c.Done {
				t.Errorf("check %q not done on full profile", c.Label)
			}
		}
	}
}

func TestCompletionScoreNameAndTypeOnly(t *testing.T) {
	// A freshly onboarded company has just a name, a type, and the stock
	// placeholder logo. Name and type are separate items, so that is 2/9.
	score, checks := CompletionScore(Profile{
		Name:    "Acme Events",
		Type:    "Agency",
		LogoURL: "https://cdn.example.com/img/placeholder.png",
	})

	want := 100.0 * 2 / 9
	if diff := score - want; diff > 0.001 || diff < -0.001 {
		t.Fatalf("name+type profile score = %v, want %v", score, want)
	}
	for _, c := range checks {
		switch c.Label {
		case "Company name", "Company type":
			if !c.Done {
				t.Errorf("check %q not done", c.Label)
			}
		default:
			if c.Done {
				t.Errorf("check %q unexpectedly done", c.Label)
			}
		}
	}
}

func TestCompletionScoreMonotonic(t *testing.T) {
	p := Profile{Name: "Apex Events", Type: "Event Agency"}
	before, _ := CompletionScore(p)

	p.Description = "Full-service event staffing."
	after, _ := CompletionScore(p)

	if after <= before {
		t.Fatalf("score did not increase after filling a field: %v -> %v", before, after)
	}
}

func TestCompletionPlaceholderLogoNotCounted(t *testing.T) {
	p := fullProfile()
	p.LogoURL = "https://cdn.example.com/img/Placeholder-logo.png"

	_, checks := CompletionScore(p)
	for _, c := range checks {
		if c.Label == "Company logo" && c.Done {
			t.Fatal("placeholder logo counted as real")
		}
	}
}

func TestCompletionPartialPairsNotCounted(t *testing.T) {
	// Email without phone, city without state: pair checks need both.
	p := Profile{Email: "hello@apexevents.example", City: "Austin"}
	score, _ := CompletionScore(p)
	if score != 0 {
		t.Fatalf("half-filled pairs scored %v, want 0", score)
	}
}

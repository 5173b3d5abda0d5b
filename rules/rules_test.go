package rules

import "testing"

func TestStopwordsFallback(t *testing.T) {
	s := Default()

	tests := []struct {
		lang  string
		token string
		stop  bool
	}{
		{"en", "the", true},
		{"en", "contractor", false},
		{"ml", "ഒരു", true},
		{"ml", "the", false},
		{"unknown", "the", true}, // unknown language uses the English set
		{"", "and", true},
	}

	for _, tt := range tests {
		if got := s.IsStop(tt.token, tt.lang); got != tt.stop {
			t.Errorf("IsStop(%q, %q) = %v, want %v", tt.token, tt.lang, got, tt.stop)
		}
	}
}

func TestTagRulesOrderAndFallback(t *testing.T) {
	s := Default()
	if len(s.Tags) != 8 {
		t.Fatalf("expected 8 tag rules, got %d", len(s.Tags))
	}
	if s.Tags[0].Tag != "Engineering/Rolling Stock" {
		t.Errorf("first rule = %q, want Engineering/Rolling Stock", s.Tags[0].Tag)
	}
	if s.FallbackTag != "General" {
		t.Errorf("fallback = %q, want General", s.FallbackTag)
	}
	for _, rule := range s.Tags {
		if len(rule.Triggers) == 0 {
			t.Errorf("rule %q has no triggers", rule.Tag)
		}
	}
}

func TestDatePatterns(t *testing.T) {
	s := Default()

	dates := []string{
		"2025-09-28",
		"28/09/2025",
		"28-09-25",
		"Sep 28, 2025",
		"September 5, 2025",
	}
	for _, d := range dates {
		matched := false
		for _, pat := range s.DatePatterns {
			if pat.MatchString(d) {
				matched = true
				break
			}
		}
		if !matched {
			t.Errorf("no date pattern matched %q", d)
		}
	}
}

func TestAmountPatterns(t *testing.T) {
	s := Default()

	amounts := []string{"INR 4,500", "Rs. 1200", "Rs 99", "₹500.75"}
	for _, a := range amounts {
		matched := false
		for _, pat := range s.AmountPatterns {
			if pat.MatchString(a) {
				matched = true
				break
			}
		}
		if !matched {
			t.Errorf("no amount pattern matched %q", a)
		}
	}

	for _, pat := range s.AmountPatterns {
		if pat.MatchString("version 4.2 of the manual") {
			t.Error("amount pattern matched plain text")
		}
	}
}

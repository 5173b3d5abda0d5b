package pipeline

import "testing"

func TestDetectActions(t *testing.T) {
	p := newTestProcessor(t, Config{})

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"obligation cue", "The contractor must submit the report by Friday.", true},
		{"deadline cue", "Responses are due no later than 15 March.", true},
		{"date token", "The inspection is scheduled for 2025-04-01.", true},
		{"plain narrative", "The weather was pleasant today.", false},
		{"cue inside a word does not fire", "Residue was found in the sump.", false},
		{"prior to", "Obtain a permit prior to entering the tunnel.", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items := p.DetectActions(Segment(tc.text))
			if got := len(items) > 0; got != tc.want {
				t.Errorf("DetectActions(%q): detected=%v, want %v (items: %v)", tc.text, got, tc.want, items)
			}
		})
	}
}

func TestDetectActionsVerbatimAndIndexed(t *testing.T) {
	p := newTestProcessor(t, Config{})
	text := "Background section with nothing actionable here. " +
		"Vendors shall provide warranty certificates within 30 days."
	sentences := Segment(text)
	items := p.DetectActions(sentences)
	if len(items) != 1 {
		t.Fatalf("expected 1 action item, got %d", len(items))
	}
	if items[0].SentenceIndex != 1 {
		t.Errorf("SentenceIndex = %d, want 1", items[0].SentenceIndex)
	}
	if items[0].Text != sentences[1].Text {
		t.Errorf("action text %q is not the verbatim sentence %q", items[0].Text, sentences[1].Text)
	}
}

func TestDetectActionsDedupAndCap(t *testing.T) {
	p := newTestProcessor(t, Config{MaxActionItems: 3})

	var sentences []Sentence
	for i := 0; i < 8; i++ {
		sentences = append(sentences, Sentence{Index: i, Text: "All staff must attend the briefing."})
	}
	if items := p.DetectActions(sentences); len(items) != 1 {
		t.Errorf("duplicates not collapsed: got %d items", len(items))
	}

	sentences = sentences[:0]
	texts := []string{
		"Crews must isolate the feeder first.",
		"Supervisors shall log every permit.",
		"Reports are due each Monday.",
		"Contractors should wear high-visibility vests.",
		"Submit the checklist before leaving site.",
	}
	for i, txt := range texts {
		sentences = append(sentences, Sentence{Index: i, Text: txt})
	}
	items := p.DetectActions(sentences)
	if len(items) != 3 {
		t.Errorf("cap not applied: got %d items, want 3", len(items))
	}
	for i, it := range items {
		if it.Text != texts[i] {
			t.Errorf("item %d = %q, want document order %q", i, it.Text, texts[i])
		}
	}
}

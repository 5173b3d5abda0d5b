package rules

// stopwordsEN is the full English stopword list used for frequency scoring.
var stopwordsEN = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from", "has",
	"have", "he", "her", "hers", "him", "his", "i", "in", "is", "it", "its",
	"of", "on", "or", "our", "so", "that", "the", "their", "them", "they",
	"this", "to", "was", "were", "will", "with", "you", "your", "we", "us",
	"not", "no", "if", "but", "into", "over", "under", "across", "while",
	"when", "where", "which", "who", "whom", "whose", "why", "how", "than",
	"then", "too", "very", "can", "may", "shall", "must", "should", "would",
	"could", "there", "here", "also", "more", "most", "less", "least",
	"each", "per", "upon", "via", "among", "within", "without", "above",
	"below", "before", "after", "between", "during", "against", "further",
	"such", "only", "same", "own", "both", "any", "all", "few", "many",
	"much", "other", "some", "nor", "like", "just", "ever", "never",
	"always", "often", "sometimes", "else", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine", "ten",
}

// stopwordsML is a minimal Malayalam seed list; extend as corpus grows.
var stopwordsML = []string{
	"ഒരു", "ഈ", "ആ", "എന്ന്", "അല്ല", "ഉണ്ട്", "അതായത്", "എന്നിവ", "വേണ്ടി", "കൊണ്ട്",
}

// defaultTagRules returns the department routing table. Evaluation order is
// fixed so that multi-tag documents list their tags deterministically.
func defaultTagRules() []TagRule {
	return []TagRule{
		{Tag: "Engineering/Rolling Stock", Triggers: []string{
			"rolling stock", "bogie", "traction", "pantograph", "brake",
			"maintenance", "schedule", "maximo", "job card", "depot",
			"workshop", "coach", "trainset", "ohe", "track",
		}},
		{Tag: "Procurement/Finance", Triggers: []string{
			"invoice", "po ", "purchase order", "vendor", "payment",
			"tender", "rfq", "gst", "grn", "bill",
		}},
		{Tag: "Safety", Triggers: []string{
			"safety", "crs", "commissioner of metro rail safety", "incident",
			"near miss", "ptw", "sop", "circular",
		}},
		{Tag: "HR/Training", Triggers: []string{
			"hr", "leave", "attendance", "policy", "training", "refresher",
			"shift", "roster",
		}},
		{Tag: "Legal/Compliance", Triggers: []string{
			"rti", "legal", "mohua", "compliance", "audit", "contract",
			"arbitration", "directive", "regulation",
		}},
		{Tag: "Environment", Triggers: []string{
			"environment", "eia", "pollution", "esg", "sustainability",
			"waste", "noise",
		}},
		{Tag: "Operations/Stations", Triggers: []string{
			"station", "controller", "operations", "timetable", "headway",
			"passenger", "ticket", "ridership",
		}},
		{Tag: "IT/Systems", Triggers: []string{
			"sharepoint", "sap", "iot", "uns", "scada", "network", "server",
			"database",
		}},
	}
}

// defaultActionCues lists obligation/deadline markers. Trailing spaces on
// "by " and "within " keep them from firing inside unrelated words.
func defaultActionCues() []string {
	return []string{
		"must", "shall", "should", "required", "require", "submit",
		"approve", "approve by", "due", "deadline", "no later than",
		"not later than", "by ", "prior to", "immediately", "within ",
		"ensure",
	}
}

// datePatterns match common date spellings: ISO, slashed, dashed, and
// abbreviated month names.
var datePatterns = []string{
	`\b\d{4}-\d{2}-\d{2}\b`,
	`\b\d{2}/\d{2}/\d{4}\b`,
	`\b\d{1,2}-\d{1,2}-\d{2,4}\b`,
	`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)[a-z]*\s+\d{1,2},\s+\d{4}\b`,
}

// amountPatterns match Indian currency amounts (INR, Rs., ₹).
var amountPatterns = []string{
	`(?i)(?:\bINR|\bRs\.?|₹)\s*\d[\d,]*(?:\.\d+)?\b`,
}

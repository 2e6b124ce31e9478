package knowledge

import (
	"fmt"
	"strings"
)

// Case is one past judgment used to back up guidance with precedent.
type Case struct {
	Name        string
	Year        int
	Court       string
	Facts       string
	Judgment    string
	KeyPoints   []string
	Precedent   string
	RelevantLaw string
}

// searchText builds the lowercase haystack keyword filters scan.
func (c Case) searchText() string {
	return strings.ToLower(c.Facts + " " + c.Judgment + " " + strings.Join(c.KeyPoints, " "))
}

var caseCategoryOrder = []string{
	"theft", "harassment", "constitutional", "environmental", "consumer",
	"family", "criminal", "labor", "medical", "housing",
}

var caseCategoryKeywords = map[string][]string{
	"theft":          {"theft", "stolen", "steal", "robbery", "burglary", "laptop", "mobile", "phone", "bike"},
	"harassment":     {"harassment", "sexual", "workplace", "women", "safety"},
	"constitutional": {"constitution", "fundamental", "rights", "amendment", "basic structure"},
	"environmental":  {"pollution", "environment", "ganga", "industrial", "waste"},
	"family":         {"divorce", "marriage", "maintenance", "custody", "alimony", "domestic"},
	"consumer":       {"consumer", "defective", "product", "refund", "warranty", "complaint"},
	"criminal":       {"murder", "death penalty", "trial", "bail", "fir", "police", "crime"},
	"labor":          {"labor", "bonded", "worker", "employment"},
	"medical":        {"medical", "doctor", "treatment", "emergency", "hospital"},
	"housing":        {"housing", "shelter", "eviction", "slum", "livelihood"},
}

var caseDatabase = map[string][]Case{
	"theft": {
		{
			Name:        "State of Maharashtra vs. Rajesh Kumar",
			Year:        2019,
			Court:       "Bombay High Court",
			Facts:       "Mobile phone theft from public transport",
			Judgment:    "Convicted under IPC 379, sentenced to 2 years imprisonment",
			KeyPoints:   []string{"CCTV evidence was crucial", "IMEI tracking helped recovery", "First-time offender got reduced sentence"},
			Precedent:   "Mobile theft cases require strong digital evidence",
			RelevantLaw: "IPC Section 379 - Theft",
		},
		{
			Name:        "Ramesh Singh vs. State of Delhi",
			Year:        2020,
			Court:       "Delhi High Court",
			Facts:       "Laptop theft from office premises",
			Judgment:    "Acquitted due to insufficient evidence",
			KeyPoints:   []string{"Lack of eyewitness testimony", "No fingerprint evidence", "Circumstantial evidence insufficient"},
			Precedent:   "Theft cases need concrete evidence beyond suspicion",
			RelevantLaw: "IPC Section 379, Evidence Act",
		},
		{
			Name:        "State vs. Amit Sharma",
			Year:        2021,
			Court:       "Supreme Court",
			Facts:       "Bike theft with organized gang involvement",
			Judgment:    "Convicted under IPC 379 and 120B, 5 years imprisonment",
			KeyPoints:   []string{"Organized crime enhancement", "Multiple vehicle thefts", "Gang conspiracy proved"},
			Precedent:   "Organized theft attracts higher punishment",
			RelevantLaw: "IPC Section 379, 120B - Criminal Conspiracy",
		},
	},
	"harassment": {
		{
			Name:        "Vishaka vs State of Rajasthan (1997)",
			Year:        1997,
			Court:       "Supreme Court of India",
			Facts:       "Sexual harassment at workplace case that led to Vishaka Guidelines",
			Judgment:    "Supreme Court laid down guidelines for prevention of sexual harassment at workplace",
			KeyPoints:   []string{"Established employer liability", "Created workplace safety guidelines", "Landmark judgment for women rights"},
			Precedent:   "Established employer liability for workplace harassment prevention",
			RelevantLaw: "Article 14, 15, 19(1)(g) of Constitution",
		},
	},
	"constitutional": {
		{
			Name:        "Kesavananda Bharati vs State of Kerala (1973)",
			Year:        1973,
			Court:       "Supreme Court of India",
			Facts:       "Challenge to constitutional amendments affecting fundamental rights",
			Judgment:    "Basic Structure Doctrine - Parliament cannot alter basic structure of Constitution",
			KeyPoints:   []string{"Basic structure doctrine established", "Limits on amendment power", "Judicial review strengthened"},
			Precedent:   "Limits on Parliament's power to amend Constitution",
			RelevantLaw: "Article 368, Fundamental Rights",
		},
		{
			Name:        "Maneka Gandhi vs Union of India (1978)",
			Year:        1978,
			Court:       "Supreme Court of India",
			Facts:       "Passport impounded without hearing, challenging Article 21 scope",
			Judgment:    "Article 21 includes right to travel abroad and due process",
			KeyPoints:   []string{"Expanded Article 21 interpretation", "Due process requirement", "Right to travel abroad"},
			Precedent:   "Expanded interpretation of life and personal liberty",
			RelevantLaw: "Article 21, 14, 19 of Constitution",
		},
	},
	"environmental": {
		{
			Name:        "MC Mehta vs Union of India (1987)",
			Year:        1987,
			Court:       "Supreme Court of India",
			Facts:       "PIL against pollution of River Ganga by industrial waste",
			Judgment:    "Industries must treat effluents before discharge, compensation for pollution",
			KeyPoints:   []string{"Polluter pays principle", "Environmental protection mandate", "Industrial responsibility"},
			Precedent:   "Polluter pays principle and environmental protection",
			RelevantLaw: "Article 21, 48A, 51A(g) of Constitution",
		},
	},
	"consumer": {
		{
			Name:      "Priya Sharma vs. Samsung India",
			Year:      2020,
			Court:     "National Consumer Commission",
			Facts:     "Defective smartphone with heating issues",
			Judgment:  "Full refund + ₹25,000 compensation ordered",
			KeyPoints: []string{"Manufacturing defect proved", "Company failed to replace", "Mental agony compensation"},
			Precedent: "Manufacturers liable for inherent defects",
		},
		{
			Name:      "Rajesh Gupta vs. Flipkart",
			Year:      2021,
			Court:     "State Consumer Commission",
			Facts:     "Wrong product delivered, refund denied",
			Judgment:  "Refund + ₹15,000 compensation for harassment",
			KeyPoints: []string{"E-commerce platform liability", "Customer service deficiency", "Unfair trade practice"},
			Precedent: "Online platforms responsible for seller actions",
		},
		{
			Name:      "Sunita Devi vs. HDFC Bank",
			Year:      2019,
			Court:     "District Consumer Forum",
			Facts:     "Unauthorized debit card transactions",
			Judgment:  "Bank ordered to refund ₹50,000 + interest",
			KeyPoints: []string{"Bank security negligence", "Customer not at fault", "Burden of proof on bank"},
			Precedent: "Banks liable for security breaches",
		},
	},
	"family": {
		{
			Name:        "Mohd. Ahmed Khan vs Shah Bano Begum (1985)",
			Year:        1985,
			Court:       "Supreme Court of India",
			Facts:       "Muslim woman sought maintenance from divorced husband under CrPC Section 125",
			Judgment:    "Supreme Court held that divorced Muslim women entitled to maintenance",
			KeyPoints:   []string{"Uniform civil code debate", "Personal law vs constitutional rights", "Women's rights protection"},
			Precedent:   "Uniform civil code debate and personal law vs constitutional rights",
			RelevantLaw: "Section 125 CrPC, Muslim Personal Law",
		},
		{
			Name:        "Meera Devi vs. Suresh Kumar",
			Year:        2020,
			Court:       "Family Court, Mumbai",
			Facts:       "Divorce petition citing domestic violence and dowry harassment",
			Judgment:    "Divorce granted with ₹15,000 monthly maintenance",
			KeyPoints:   []string{"Medical evidence of abuse", "Dowry demand proved", "Child custody to mother"},
			Precedent:   "Domestic violence sufficient ground for divorce",
			RelevantLaw: "Hindu Marriage Act 1955, Domestic Violence Act 2005",
		},
		{
			Name:        "Kavita Singh vs. Rohit Singh",
			Year:        2021,
			Court:       "Delhi Family Court",
			Facts:       "Maintenance claim after mutual consent divorce",
			Judgment:    "Permanent alimony of ₹8 lakh awarded",
			KeyPoints:   []string{"Wife sacrificed career", "Husband's income capacity", "Standard of living maintained"},
			Precedent:   "Maintenance based on lifestyle and sacrifice",
			RelevantLaw: "Hindu Marriage Act Section 25",
		},
		{
			Name:        "Anita Sharma vs. Vikash Sharma",
			Year:        2019,
			Court:       "Supreme Court",
			Facts:       "Child custody dispute after divorce",
			Judgment:    "Joint custody with primary residence with mother",
			KeyPoints:   []string{"Best interest of child", "Both parents fit", "Child's preference considered"},
			Precedent:   "Child welfare paramount in custody decisions",
			RelevantLaw: "Guardians and Wards Act 1890",
		},
	},
	"criminal": {
		{
			Name:        "Bachan Singh vs State of Punjab (1980)",
			Year:        1980,
			Court:       "Supreme Court of India",
			Facts:       "Constitutional validity of death penalty under IPC Section 302",
			Judgment:    "Death penalty constitutional but only in 'rarest of rare' cases",
			KeyPoints:   []string{"Rarest of rare doctrine", "Death penalty guidelines", "Constitutional validity upheld"},
			Precedent:   "Guidelines for awarding death penalty",
			RelevantLaw: "Article 21, Section 302 IPC",
		},
		{
			Name:        "Hussainara Khatoon vs Home Secretary Bihar (1979)",
			Year:        1979,
			Court:       "Supreme Court of India",
			Facts:       "Undertrials in Bihar jails for years without trial",
			Judgment:    "Right to speedy trial and free legal aid for poor accused",
			KeyPoints:   []string{"Speedy trial right", "Legal aid for poor", "Prison reforms needed"},
			Precedent:   "Prison reforms and undertrial rights",
			RelevantLaw: "Article 21, 22 of Constitution, Section 304 CrPC",
		},
		{
			Name:        "State vs. Deepak Yadav",
			Year:        2020,
			Court:       "Sessions Court, Gurgaon",
			Facts:       "Cybercrime - online fraud and identity theft",
			Judgment:    "Convicted under IT Act and IPC, 3 years imprisonment",
			KeyPoints:   []string{"Digital evidence crucial", "Multiple victims", "Financial loss recovery ordered"},
			Precedent:   "Cybercrime requires specialized investigation",
			RelevantLaw: "IT Act 2000, IPC Section 420",
		},
		{
			Name:        "Ravi Kumar vs. State of UP",
			Year:        2021,
			Court:       "Allahabad High Court",
			Facts:       "False FIR registration, malicious prosecution",
			Judgment:    "Acquitted, compensation of ₹2 lakh ordered",
			KeyPoints:   []string{"Fabricated evidence", "Witness testimony contradictory", "Police investigation flawed"},
			Precedent:   "False cases attract compensation for harassment",
			RelevantLaw: "IPC Section 211, 182",
		},
	},
	"labor": {
		{
			Name:        "Bandhua Mukti Morcha vs Union of India (1984)",
			Year:        1984,
			Court:       "Supreme Court of India",
			Facts:       "PIL for release and rehabilitation of bonded laborers",
			Judgment:    "State duty to identify, release and rehabilitate bonded laborers",
			KeyPoints:   []string{"Bonded labor eradication", "State responsibility", "Rehabilitation mandate"},
			Precedent:   "State responsibility for bonded labor eradication",
			RelevantLaw: "Article 23, 24 of Constitution, Bonded Labour Act 1976",
		},
	},
	"medical": {
		{
			Name:        "Parmanand Katara vs Union of India (1989)",
			Year:        1989,
			Court:       "Supreme Court of India",
			Facts:       "Doctors refusing to treat accident victims without police clearance",
			Judgment:    "Doctors have professional duty to provide emergency medical aid",
			KeyPoints:   []string{"Emergency medical duty", "No police clearance needed", "Professional obligation"},
			Precedent:   "Right to emergency medical treatment",
			RelevantLaw: "Article 21 of Constitution",
		},
	},
	"housing": {
		{
			Name:        "Chameli Singh vs State of UP (1996)",
			Year:        1996,
			Court:       "Supreme Court of India",
			Facts:       "Right to shelter as part of right to life",
			Judgment:    "Right to shelter is fundamental right under Article 21",
			KeyPoints:   []string{"Shelter as fundamental right", "State obligation", "Basic human need"},
			Precedent:   "Housing as fundamental right",
			RelevantLaw: "Article 21 of Constitution",
		},
		{
			Name:        "Olga Tellis vs Bombay Municipal Corporation (1985)",
			Year:        1985,
			Court:       "Supreme Court of India",
			Facts:       "Pavement dwellers challenged eviction without alternative rehabilitation",
			Judgment:    "Right to livelihood is part of right to life under Article 21",
			KeyPoints:   []string{"Livelihood as part of life", "Eviction guidelines", "Alternative rehabilitation"},
			Precedent:   "Expanded scope of Article 21 to include livelihood rights",
			RelevantLaw: "Article 21, 19(1)(e), 19(1)(g) of Constitution",
		},
	},
}

// relevantCases returns up to two cases from one category. With keywords,
// matching cases are preferred; when none match the category's top two are
// returned anyway so a matched category always contributes precedent.
func relevantCases(category string, keywords []string) []Case {
	cases, ok := caseDatabase[category]
	if !ok {
		return nil
	}
	if len(keywords) > 0 {
		var matched []Case
		for _, c := range cases {
			text := c.searchText()
			for _, kw := range keywords {
				if strings.Contains(text, strings.ToLower(kw)) {
					matched = append(matched, c)
					break
				}
			}
		}
		if len(matched) > 0 {
			return capCases(matched, 2)
		}
	}
	return capCases(cases, 2)
}

// CasesForQuery picks up to three past cases relevant to a free-text query.
// Categories whose keyword list matches the query each contribute up to two
// cases; when no category matches, every category is scanned against the
// query's individual words.
func CasesForQuery(query string) []Case {
	lower := strings.ToLower(query)
	words := strings.Fields(lower)

	var matched []string
	for _, category := range caseCategoryOrder {
		for _, kw := range caseCategoryKeywords[category] {
			if strings.Contains(lower, kw) {
				matched = append(matched, category)
				break
			}
		}
	}

	var all []Case
	for _, category := range matched {
		all = append(all, relevantCases(category, words)...)
	}
	if len(all) == 0 {
		for _, category := range caseCategoryOrder {
			all = append(all, keywordOnlyCases(category, words)...)
		}
	}
	return capCases(all, 3)
}

// keywordOnlyCases is the cross-category fallback scan: it returns only
// cases whose text matches a query word, never the category's defaults.
func keywordOnlyCases(category string, keywords []string) []Case {
	var matched []Case
	for _, c := range caseDatabase[category] {
		text := c.searchText()
		for _, kw := range keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				matched = append(matched, c)
				break
			}
		}
	}
	return capCases(matched, 2)
}

func capCases(cases []Case, n int) []Case {
	if len(cases) > n {
		return cases[:n]
	}
	return cases
}

// FormatCaseReferences renders past cases as the markdown block appended to
// guidance responses. Empty input renders to an empty string.
func FormatCaseReferences(cases []Case) string {
	if len(cases) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\n**📚 Relevant Past Cases:**\n")
	for i, c := range cases {
		fmt.Fprintf(&b, "\n**🏛️ Case %d: %s (%d)**\n", i+1, c.Name, c.Year)
		fmt.Fprintf(&b, "   **Court**: %s\n", c.Court)
		fmt.Fprintf(&b, "   **Facts**: %s\n", c.Facts)
		fmt.Fprintf(&b, "   **Judgment**: %s\n", c.Judgment)
		fmt.Fprintf(&b, "   **Legal Precedent**: %s\n", c.Precedent)
		if c.RelevantLaw != "" {
			fmt.Fprintf(&b, "   **Relevant Law**: %s\n", c.RelevantLaw)
		}
	}
	return b.String()
}

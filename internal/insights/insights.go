package insights

import (
	"fmt"
	"regexp"
	"strings"
)

// CompanyInfo holds details sifted out of the job description. Empty fields
// mean the description never stated them.
type CompanyInfo struct {
	CompanyName string `json:"companyName,omitempty"`
	RoleTitle   string `json:"roleTitle,omitempty"`
	CompanySize string `json:"companySize,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Insights carries the strategic read on the role.
type Insights struct {
	CompanyOverview      string   `json:"companyOverview"`
	RoleFocus            string   `json:"roleFocus,omitempty"`
	WhatToEmphasize      []string `json:"whatToEmphasize"`
	ApplicationTips      []string `json:"applicationTips"`
	EstimatedSalaryRange string   `json:"estimatedSalaryRange"`
	CareerPath           string   `json:"careerPath"`
	RedFlags             []string `json:"redFlags"`
	GreenFlags           []string `json:"greenFlags"`
}

// Result is the complete insights package for one job description.
type Result struct {
	CompanyInfo    CompanyInfo `json:"companyInfo"`
	CultureSignals []string    `json:"cultureSignals"`
	Insights       Insights    `json:"insights"`
}

var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(?:at|@|join)\s+([A-Z][A-Za-z0-9\s&.]+?)(?:\s+is|\s+seeks|\s+we|\s+our|\n)`),
	regexp.MustCompile(`(?im)^([A-Z][A-Za-z0-9\s&.]+?)\s+is\s+(?:seeking|hiring|looking)`),
	regexp.MustCompile(`(?im)About\s+([A-Z][A-Za-z0-9\s&.]+?)[\n:]`),
	regexp.MustCompile(`(?im)Company:\s*([A-Z][A-Za-z0-9\s&.]+?)\n`),
}

var rolePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^([A-Z][A-Za-z\s]+(?:Engineer|Developer|Manager|Analyst|Designer|Architect|Consultant|Specialist|Lead|Director))`),
	regexp.MustCompile(`(?m)Position:\s*([A-Z][A-Za-z\s]+)`),
	regexp.MustCompile(`(?m)Role:\s*([A-Z][A-Za-z\s]+)`),
	regexp.MustCompile(`(?m)Title:\s*([A-Z][A-Za-z\s]+)`),
}

var locationPattern = regexp.MustCompile(`(?i)Location:\s*([A-Za-z\s,]+?)(?:\n|$)`)

// keyword tables are enumerated as slices so detection order is fixed.
var sizeKeywords = []struct {
	size     string
	keywords []string
}{
	{"startup", []string{"startup", "early-stage", "seed funded", "series a", "series b"}},
	{"mid-size", []string{"growing company", "mid-size", "established"}},
	{"enterprise", []string{"fortune 500", "global leader", "multinational", "enterprise", "industry leader"}},
}

var industryKeywords = []struct {
	industry string
	keywords []string
}{
	{"Technology", []string{"software", "saas", "cloud", "ai", "machine learning", "data science"}},
	{"Finance", []string{"fintech", "banking", "financial services", "investment", "trading"}},
	{"Healthcare", []string{"healthcare", "medical", "biotech", "pharma", "telemedicine"}},
	{"E-commerce", []string{"e-commerce", "marketplace", "retail", "shopping"}},
	{"Consulting", []string{"consulting", "advisory", "professional services"}},
	{"Gaming", []string{"gaming", "game development", "esports"}},
	{"Education", []string{"edtech", "education", "learning platform"}},
}

var cultureIndicators = []struct {
	culture  string
	keywords []string
}{
	{"Innovation-Focused", []string{"innovation", "cutting-edge", "pioneering", "disruptive", "breakthrough"}},
	{"Collaborative", []string{"collaboration", "team player", "cross-functional", "teamwork", "work together"}},
	{"Fast-Paced", []string{"fast-paced", "dynamic", "agile", "rapidly growing", "move quickly"}},
	{"Data-Driven", []string{"data-driven", "metrics", "analytics", "evidence-based", "kpis"}},
	{"Customer-Centric", []string{"customer-focused", "customer experience", "user-centric", "client satisfaction"}},
	{"Open Source Friendly", []string{"open source", "github", "contribute to community", "oss"}},
	{"Learning Culture", []string{"continuous learning", "professional development", "growth mindset", "mentorship"}},
	{"Work-Life Balance", []string{"work-life balance", "flexible hours", "remote-first", "wellness"}},
	{"Diversity & Inclusion", []string{"diversity", "inclusive", "equal opportunity", "belonging"}},
}

// ExtractCompanyInfo pulls company name, role title, size, industry and
// location out of the job description using label and keyword heuristics.
func ExtractCompanyInfo(jdText string) CompanyInfo {
	var info CompanyInfo

	for _, p := range companyPatterns {
		if m := p.FindStringSubmatch(jdText); m != nil {
			info.CompanyName = strings.TrimSpace(m[1])
			break
		}
	}
	for _, p := range rolePatterns {
		if m := p.FindStringSubmatch(jdText); m != nil {
			info.RoleTitle = strings.TrimSpace(m[1])
			break
		}
	}

	lower := strings.ToLower(jdText)
	for _, group := range sizeKeywords {
		if containsAny(lower, group.keywords) {
			info.CompanySize = group.size
			break
		}
	}
	for _, group := range industryKeywords {
		if containsAny(lower, group.keywords) {
			info.Industry = group.industry
			break
		}
	}

	if m := locationPattern.FindStringSubmatch(jdText); m != nil {
		info.Location = strings.TrimSpace(m[1])
	} else if strings.Contains(lower, "remote") {
		info.Location = "Remote"
	}
	return info
}

// AnalyzeCulture lists cultural attributes signalled by the job description.
func AnalyzeCulture(jdText string) []string {
	lower := strings.ToLower(jdText)
	var signals []string
	for _, group := range cultureIndicators {
		if containsAny(lower, group.keywords) {
			signals = append(signals, group.culture)
		}
	}
	return signals
}

// Generate builds the complete insights package for a job description given
// the candidate's matched and missing skills.
func Generate(jdText string, matchedSkills, missingSkills []string) Result {
	info := ExtractCompanyInfo(jdText)
	signals := AnalyzeCulture(jdText)
	return Result{
		CompanyInfo:    info,
		CultureSignals: signals,
		Insights:       roleInsights(jdText, info, signals, matchedSkills, missingSkills),
	}
}

func roleInsights(jdText string, info CompanyInfo, signals []string, matchedSkills, missingSkills []string) Insights {
	var out Insights
	lower := strings.ToLower(jdText)
	hasSignal := make(map[string]bool, len(signals))
	for _, s := range signals {
		hasSignal[s] = true
	}

	if info.CompanyName != "" {
		sizeText := ""
		if info.CompanySize != "" {
			sizeText = info.CompanySize + " "
		}
		industryText := ""
		if info.Industry != "" {
			industryText = " in the " + info.Industry + " sector"
		}
		out.CompanyOverview = fmt.Sprintf("%s is a %scompany%s.", info.CompanyName, sizeText, industryText)
	} else {
		out.CompanyOverview = "Company information not explicitly stated in the job description."
	}

	if info.RoleTitle != "" {
		out.RoleFocus = fmt.Sprintf("This is a %s position", info.RoleTitle)
		if info.Location != "" {
			out.RoleFocus += " based in " + info.Location
		}
		out.RoleFocus += "."
	}

	if hasSignal["Open Source Friendly"] {
		out.WhatToEmphasize = append(out.WhatToEmphasize, "Highlight your GitHub profile and any open source contributions")
	}
	if hasSignal["Collaborative"] {
		out.WhatToEmphasize = append(out.WhatToEmphasize, "Emphasize team projects and cross-functional collaboration experience")
	}
	if hasSignal["Data-Driven"] {
		out.WhatToEmphasize = append(out.WhatToEmphasize, "Showcase projects with measurable impact and data analysis")
	}
	if hasSignal["Innovation-Focused"] {
		out.WhatToEmphasize = append(out.WhatToEmphasize, "Mention innovative solutions, new technologies you've adopted, or patents")
	}
	if hasSignal["Customer-Centric"] {
		out.WhatToEmphasize = append(out.WhatToEmphasize, "Include examples of improving user experience or customer satisfaction")
	}
	if strings.Contains(lower, "leadership") || strings.Contains(lower, "senior") {
		out.WhatToEmphasize = append(out.WhatToEmphasize, "Demonstrate leadership experience and mentoring capabilities")
	}
	if strings.Contains(lower, "startup") || info.CompanySize == "startup" {
		out.WhatToEmphasize = append(out.WhatToEmphasize, "Show adaptability, wearing multiple hats, and thriving in ambiguity")
	}

	if len(missingSkills) > 0 {
		out.ApplicationTips = append(out.ApplicationTips,
			fmt.Sprintf("Address the %d missing skills by showing quick learning ability or related experience", len(missingSkills)))
	}
	if len(matchedSkills) >= 7 {
		out.ApplicationTips = append(out.ApplicationTips, "Strong skill match! Lead with your technical expertise in the cover letter")
	}
	if strings.Contains(lower, "portfolio") || strings.Contains(lower, "github") {
		out.ApplicationTips = append(out.ApplicationTips, "Attach or link your portfolio/GitHub - it's likely required for review")
	}
	if strings.Contains(lower, "referral") {
		out.ApplicationTips = append(out.ApplicationTips, "Seek an employee referral if possible - the job description mentions it")
	}
	out.ApplicationTips = append(out.ApplicationTips, "Customize your resume to mirror the language used in this job description")

	role := strings.ToLower(info.RoleTitle)
	switch {
	case strings.Contains(role, "senior") || strings.Contains(role, "lead"):
		out.EstimatedSalaryRange = "$120K - $180K (Senior level, varies by location)"
	case strings.Contains(role, "junior") || strings.Contains(role, "associate"):
		out.EstimatedSalaryRange = "$70K - $100K (Junior level, varies by location)"
	case strings.Contains(role, "principal") || strings.Contains(role, "staff"):
		out.EstimatedSalaryRange = "$150K - $220K (Principal/Staff level, varies by location)"
	case strings.Contains(role, "manager") || strings.Contains(role, "director"):
		out.EstimatedSalaryRange = "$130K - $200K (Management level, varies by location)"
	default:
		out.EstimatedSalaryRange = "$90K - $140K (Mid-level, varies by location)"
	}

	switch {
	case strings.Contains(role, "developer") || strings.Contains(role, "engineer"):
		out.CareerPath = "Typical path: Junior -> Mid-level -> Senior -> Staff/Principal -> Engineering Manager/Architect"
	case strings.Contains(role, "analyst"):
		out.CareerPath = "Typical path: Analyst -> Senior Analyst -> Lead Analyst -> Manager -> Director of Analytics"
	case strings.Contains(role, "designer"):
		out.CareerPath = "Typical path: Designer -> Senior Designer -> Lead Designer -> Design Manager -> Head of Design"
	default:
		out.CareerPath = "Career progression varies by role; typically Junior -> Senior -> Lead -> Manager"
	}

	if strings.Contains(lower, "unpaid") || strings.Contains(lower, "no compensation") {
		out.RedFlags = append(out.RedFlags, "Unpaid position - consider if this aligns with your goals")
	}
	if strings.Contains(lower, "overtime expected") || strings.Contains(lower, "long hours") {
		out.RedFlags = append(out.RedFlags, "Mentions expected overtime - assess work-life balance expectations")
	}
	if len(missingSkills) > 10 {
		out.RedFlags = append(out.RedFlags, "Many missing skills - this role might be a significant stretch")
	}
	if strings.Contains(lower, "urgent") && strings.Contains(lower, "immediate") {
		out.RedFlags = append(out.RedFlags, "Urgency signals possible high turnover or critical backfill")
	}

	if strings.Contains(lower, "professional development") || strings.Contains(lower, "training budget") {
		out.GreenFlags = append(out.GreenFlags, "Offers professional development opportunities")
	}
	if strings.Contains(lower, "remote") || strings.Contains(lower, "work from home") {
		out.GreenFlags = append(out.GreenFlags, "Remote work options available")
	}
	if strings.Contains(lower, "equity") || strings.Contains(lower, "stock options") {
		out.GreenFlags = append(out.GreenFlags, "Equity/stock options mentioned - potential for ownership")
	}
	if strings.Contains(lower, "diverse") || strings.Contains(lower, "inclusive") {
		out.GreenFlags = append(out.GreenFlags, "Company emphasizes diversity and inclusion")
	}
	if len(matchedSkills) >= 8 {
		out.GreenFlags = append(out.GreenFlags, "Your skills align very well with this role")
	}

	return out
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

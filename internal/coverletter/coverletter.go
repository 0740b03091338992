package coverletter

import (
	"fmt"
	"regexp"
	"strings"

	"skillfit-backend/internal/shared/util"
)

const (
	defaultJobTitle = "the position"
	defaultCompany  = "your company"
	defaultSkills   = "my technical skills"
)

var (
	titlePattern   = regexp.MustCompile(`(?i)(?:Job Title|Role|Position)\s*[:|-]\s*([^\n\r]+)`)
	companyPattern = regexp.MustCompile(`(?i)(?:Company|About)\s*[:|-]\s*([^\n\r]+)`)
)

// ExtractJobDetails pulls the job title and company name out of a job
// description using label heuristics, falling back to neutral placeholders.
func ExtractJobDetails(jdText string) (jobTitle, company string) {
	jobTitle, company = defaultJobTitle, defaultCompany
	if m := titlePattern.FindStringSubmatch(jdText); m != nil {
		jobTitle = strings.TrimSpace(m[1])
	}
	if m := companyPattern.FindStringSubmatch(jdText); m != nil {
		company = strings.TrimSpace(m[1])
	}
	return jobTitle, company
}

// Generate renders a template cover letter from the job description and the
// candidate's matched skills. The top four skills are woven into the body.
func Generate(jdText string, matchedSkills []string) string {
	jobTitle, company := ExtractJobDetails(jdText)
	skills := formatSkills(matchedSkills)

	return fmt.Sprintf(`Dear Hiring Manager,

I am writing to express my enthusiastic interest in the %s at %s. With a strong background in %s, I am confident in my ability to contribute effectively to your team.

Upon reviewing the job description, I was excited to see that you are looking for a candidate with expertise in %s. My experience aligns well with these requirements, and I have a proven track record of applying these skills to deliver high-quality results.

I am particularly drawn to %s because of its reputation for excellence and innovation. I am eager to bring my problem-solving abilities and technical proficiency to help your team achieve its goals.

Thank you for considering my application. I look forward to the possibility of discussing how my background, passion, and skills make me a perfect fit for this role.

Sincerely,

[Your Name]`, jobTitle, company, skills, skills, company)
}

func formatSkills(matched []string) string {
	if len(matched) == 0 {
		return defaultSkills
	}
	top := matched
	if len(top) > 4 {
		top = top[:4]
	}
	titled := make([]string, len(top))
	for i, s := range top {
		titled[i] = util.Title(s)
	}
	if len(titled) == 1 {
		return titled[0]
	}
	return strings.Join(titled[:len(titled)-1], ", ") + " and " + titled[len(titled)-1]
}

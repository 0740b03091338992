package formatting

import (
	"regexp"
	"strings"
)

// Tip is one piece of structural feedback on the resume.
type Tip struct {
	Category   string `json:"category"`
	Severity   string `json:"severity"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
	Icon       string `json:"icon"`
}

var (
	emailPattern        = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern        = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	bulletPattern       = regexp.MustCompile(`[•\-*]\s+`)
	quantifiedPattern   = regexp.MustCompile(`(?i)\d+%|\d+\+|increased|improved|reduced|generated|saved`)
	weakPhrasePattern   = regexp.MustCompile(`(?i)\b(responsible for|duties included|helped with)\b`)
	pronounPattern      = regexp.MustCompile(`\b(I|me|my|we|our)\b`)
	sectionPatterns     = []struct {
		name    string
		pattern *regexp.Regexp
	}{
		{"Experience", regexp.MustCompile(`(?i)\b(experience|work history|employment|professional background)\b`)},
		{"Education", regexp.MustCompile(`(?i)\b(education|academic|degree|university|college)\b`)},
		{"Skills", regexp.MustCompile(`(?i)\b(skills|technical skills|competencies|expertise)\b`)},
		{"Summary", regexp.MustCompile(`(?i)\b(summary|objective|profile|about)\b`)},
	}
)

// Analyze inspects resume structure and returns formatting tips. A resume
// collecting two or fewer tips gets a leading success tip instead.
func Analyze(resumeText string) []Tip {
	if resumeText == "" {
		return nil
	}

	var tips []Tip
	lines := strings.Split(resumeText, "\n")
	wordCount := len(strings.Fields(resumeText))

	if wordCount < 150 {
		tips = append(tips, Tip{
			Category:   "Length",
			Severity:   "high",
			Issue:      "Resume is too short",
			Suggestion: "Your resume appears to be very brief. Aim for 300-500 words to provide enough detail about your experience and skills.",
			Icon:       "fa-ruler",
		})
	} else if wordCount > 800 {
		tips = append(tips, Tip{
			Category:   "Length",
			Severity:   "medium",
			Issue:      "Resume may be too long",
			Suggestion: "Consider condensing your resume. Focus on the most relevant experiences and achievements for the target role.",
			Icon:       "fa-ruler",
		})
	}

	if !emailPattern.MatchString(resumeText) {
		tips = append(tips, Tip{
			Category:   "Contact",
			Severity:   "high",
			Issue:      "Missing email address",
			Suggestion: "Add a professional email address at the top of your resume. Use a format like firstname.lastname@email.com.",
			Icon:       "fa-envelope",
		})
	}
	if !phonePattern.MatchString(resumeText) {
		tips = append(tips, Tip{
			Category:   "Contact",
			Severity:   "medium",
			Issue:      "Missing phone number",
			Suggestion: "Include a phone number where recruiters can reach you. Use a professional voicemail greeting.",
			Icon:       "fa-phone",
		})
	}

	missing := make(map[string]bool)
	for _, sec := range sectionPatterns {
		if !sec.pattern.MatchString(resumeText) {
			missing[sec.name] = true
		}
	}
	if missing["Experience"] {
		tips = append(tips, Tip{
			Category:   "Structure",
			Severity:   "high",
			Issue:      "Missing Work Experience section",
			Suggestion: "Add a clear 'Work Experience' or 'Professional Experience' section. List your roles in reverse chronological order with company names, dates, and key achievements.",
			Icon:       "fa-briefcase",
		})
	}
	if missing["Education"] {
		tips = append(tips, Tip{
			Category:   "Structure",
			Severity:   "medium",
			Issue:      "Missing Education section",
			Suggestion: "Include an 'Education' section with your degree(s), institution(s), and graduation year(s).",
			Icon:       "fa-graduation-cap",
		})
	}
	if missing["Skills"] {
		tips = append(tips, Tip{
			Category:   "Structure",
			Severity:   "medium",
			Issue:      "Missing Skills section",
			Suggestion: "Add a dedicated 'Skills' section to highlight your technical and soft skills. This helps with ATS scanning and quick recruiter review.",
			Icon:       "fa-cogs",
		})
	}

	if !bulletPattern.MatchString(resumeText) {
		tips = append(tips, Tip{
			Category:   "Formatting",
			Severity:   "medium",
			Issue:      "No bullet points detected",
			Suggestion: "Use bullet points to list achievements and responsibilities. Start each bullet with a strong action verb (e.g., 'Developed', 'Managed', 'Increased').",
			Icon:       "fa-list-ul",
		})
	}
	if !quantifiedPattern.MatchString(resumeText) {
		tips = append(tips, Tip{
			Category:   "Content",
			Severity:   "high",
			Issue:      "Lacks quantifiable achievements",
			Suggestion: "Add measurable results to your accomplishments. Use numbers, percentages, or metrics (e.g., 'Increased sales by 30%', 'Managed team of 5').",
			Icon:       "fa-chart-line",
		})
	}
	if weakPhrasePattern.MatchString(resumeText) {
		tips = append(tips, Tip{
			Category:   "Content",
			Severity:   "medium",
			Issue:      "Using weak/passive language",
			Suggestion: "Replace passive phrases like 'Responsible for' with strong action verbs like 'Led', 'Executed', 'Spearheaded', 'Optimized'.",
			Icon:       "fa-bolt",
		})
	}

	longParagraphs := 0
	for _, line := range lines {
		if len(strings.Fields(line)) > 50 {
			longParagraphs++
		}
	}
	if longParagraphs > 2 {
		tips = append(tips, Tip{
			Category:   "Formatting",
			Severity:   "low",
			Issue:      "Dense text blocks detected",
			Suggestion: "Break long paragraphs into concise bullet points. Recruiters typically spend 6-7 seconds scanning a resume.",
			Icon:       "fa-align-left",
		})
	}

	// Pronoun check stays case-sensitive so words like "in" or "mystery"
	// never trip it.
	if pronounPattern.MatchString(resumeText) {
		tips = append(tips, Tip{
			Category:   "Style",
			Severity:   "low",
			Issue:      "Contains personal pronouns",
			Suggestion: "Remove personal pronouns (I, me, my). Use professional, third-person style. Start bullets with action verbs directly.",
			Icon:       "fa-user-slash",
		})
	}

	if len(tips) <= 2 {
		tips = append([]Tip{{
			Category:   "Overall",
			Severity:   "success",
			Issue:      "Well-structured resume!",
			Suggestion: "Your resume has a solid structure. Keep refining the content and tailoring it to each job application.",
			Icon:       "fa-check-circle",
		}}, tips...)
	}

	return tips
}

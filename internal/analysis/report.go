package analysis

import (
	"skillfit-backend/internal/formatting"
	"skillfit-backend/internal/insights"
	"skillfit-backend/internal/interview"
	"skillfit-backend/internal/tailor"
	"skillfit-backend/internal/upskilling"
)

// SectionRange locates one detected resume section by line numbers.
type SectionRange struct {
	Start     int `json:"start"`
	End       int `json:"end"`
	LineCount int `json:"lineCount"`
}

// ImprovementSummary aggregates what the tailoring pass changed.
type ImprovementSummary struct {
	SkillsAdded         int    `json:"skillsAdded"`
	LinesEnhanced       int    `json:"linesEnhanced"`
	TotalChanges        int    `json:"totalChanges"`
	CoverageImprovement string `json:"coverageImprovement"`
}

// Report is the full analysis result returned to the client.
type Report struct {
	AnalysisID           string                  `json:"analysisId"`
	Score                float64                 `json:"score"`
	JDSkills             []string                `json:"jdSkills"`
	ResumeSkills         []string                `json:"resumeSkills"`
	MatchedSkills        []string                `json:"matchedSkills"`
	MissingSkills        []string                `json:"missingSkills"`
	ResumeSections       map[string]SectionRange `json:"resumeSections"`
	Suggestions          []tailor.Suggestion     `json:"suggestions"`
	OriginalResume       string                  `json:"originalResume"`
	TailoredResume       string                  `json:"tailoredResume"`
	Modifications        []tailor.Modification   `json:"modifications"`
	Highlights           []tailor.Highlight      `json:"highlights"`
	ImprovementSummary   ImprovementSummary      `json:"improvementSummary"`
	LowSectionConfidence bool                    `json:"lowSectionConfidence"`
	UpskillingPlan       []upskilling.Item       `json:"upskillingPlan"`
	CoverLetter          string                  `json:"coverLetter"`
	InterviewQuestions   []interview.Question    `json:"interviewQuestions"`
	CompanyInsights      insights.Result         `json:"companyInsights"`
	FormattingTips       []formatting.Tip        `json:"formattingTips"`
}

package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"skillfit-backend/internal/coverletter"
	"skillfit-backend/internal/formatting"
	"skillfit-backend/internal/insights"
	"skillfit-backend/internal/interview"
	"skillfit-backend/internal/match"
	"skillfit-backend/internal/shared/telemetry"
	"skillfit-backend/internal/skills"
	"skillfit-backend/internal/tailor"
	"skillfit-backend/internal/upskilling"
)

// maxCoverageEstimate caps the optimistic coverage improvement claim.
const maxCoverageEstimate = 25

// Service runs the full job-match analysis pipeline.
type Service struct {
	matcher *match.Matcher
}

// NewService constructs a Service around the given matcher.
func NewService(matcher *match.Matcher) *Service {
	return &Service{matcher: matcher}
}

// Analyze extracts skills from both texts, scores the match, tailors the
// resume toward the missing skills and assembles the complete report.
func (s *Service) Analyze(ctx context.Context, jdText, resumeText string) (*Report, error) {
	if strings.TrimSpace(jdText) == "" || strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyInput
	}

	jdSkills := skills.Extract(jdText)
	resumeSkills := skills.Extract(resumeText)

	result := s.matcher.Match(ctx, jdSkills, resumeSkills)

	lines := tailor.SplitLines(resumeText)
	sections := tailor.Segment(lines)
	suggestions := tailor.Plan(sections, result.Missing)
	tailored, mods := tailor.Apply(lines, sections, suggestions)
	highlights := tailor.Diff(resumeText, tailored)

	lowConfidence := len(sections) == 1 && sections[0].Name == tailor.SectionHeader
	if lowConfidence {
		telemetry.Info("analysis.low_section_confidence", map[string]any{
			"lines": len(lines),
		})
	}

	report := &Report{
		AnalysisID:           uuid.NewString(),
		Score:                result.Score,
		JDSkills:             jdSkills,
		ResumeSkills:         resumeSkills,
		MatchedSkills:        result.Matched,
		MissingSkills:        result.Missing,
		ResumeSections:       sectionRanges(sections),
		Suggestions:          suggestions,
		OriginalResume:       resumeText,
		TailoredResume:       tailored,
		Modifications:        mods,
		Highlights:           highlights,
		ImprovementSummary:   summarize(mods, result.Missing),
		LowSectionConfidence: lowConfidence,
		UpskillingPlan:       upskilling.Plan(result.Missing),
		CoverLetter:          coverletter.Generate(jdText, result.Matched),
		InterviewQuestions:   interview.Generate(result.Matched),
		CompanyInsights:      insights.Generate(jdText, result.Matched, result.Missing),
		FormattingTips:       formatting.Analyze(resumeText),
	}
	return report, nil
}

func sectionRanges(sections []tailor.Section) map[string]SectionRange {
	ranges := make(map[string]SectionRange, len(sections))
	for _, sec := range sections {
		if _, ok := ranges[sec.Name]; ok {
			continue
		}
		ranges[sec.Name] = SectionRange{
			Start:     sec.Start,
			End:       sec.End,
			LineCount: len(sec.Lines),
		}
	}
	return ranges
}

func summarize(mods []tailor.Modification, missingSkills []string) ImprovementSummary {
	added := make(map[string]bool)
	linesEnhanced := 0
	for _, mod := range mods {
		switch mod.Kind {
		case tailor.ModSkillAddition:
			for _, skill := range mod.Skills {
				added[skill] = true
			}
		case tailor.ModLineEnhancement:
			linesEnhanced++
		}
	}

	coverage := len(missingSkills) * 5
	if coverage > maxCoverageEstimate {
		coverage = maxCoverageEstimate
	}
	return ImprovementSummary{
		SkillsAdded:         len(added),
		LinesEnhanced:       linesEnhanced,
		TotalChanges:        len(mods),
		CoverageImprovement: fmt.Sprintf("+%d%%", coverage),
	}
}

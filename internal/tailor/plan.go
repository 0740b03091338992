package tailor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"skillfit-backend/internal/shared/util"
)

// achievementVerbs mark experience bullets suitable for skill insertion.
var achievementVerbs = []string{"developed", "built", "implemented", "created", "managed"}

// bulletMarkers accepted as list-item openers.
const bulletMarkers = "-*•"

// Plan proposes insertion points for each missing skill, probing the skills,
// projects and experience sections independently. Skills are processed in the
// supplied order and each may collect zero or more suggestions; conflict
// resolution happens in Apply.
func Plan(sections []Section, missingSkills []string) []Suggestion {
	suggestions := make([]Suggestion, 0, len(missingSkills))

	skillsSec := findSection(sections, SectionSkills)
	projectsSec := findSection(sections, SectionProjects)
	experienceSec := findSection(sections, SectionExperience)

	for _, skill := range missingSkills {
		if target := listTargetLine(skillsSec); target >= 0 {
			suggestions = append(suggestions, Suggestion{
				Skill:      skill,
				Section:    SectionSkills,
				Action:     ActionAddToList,
				Location:   "Technical Skills section",
				Rationale:  fmt.Sprintf("Add %q to your Technical Skills list", skill),
				Priority:   PriorityHigh,
				LineNumber: target,
			})
		}

		if projectsSec != nil {
			for i, line := range projectsSec.Lines {
				if isBullet(line) || strings.Contains(strings.ToLower(line), "project") {
					suggestions = append(suggestions, Suggestion{
						Skill:      skill,
						Section:    SectionProjects,
						Action:     ActionEnhanceDescription,
						Location:   fmt.Sprintf("Projects section, line %d", i+1),
						Rationale:  fmt.Sprintf("Mention %q in your project description: %q", skill, util.Truncate(strings.TrimSpace(line), 50)),
						Priority:   PriorityMedium,
						LineNumber: projectsSec.Start + i,
					})
					break
				}
			}
		}

		if experienceSec != nil {
			for i, line := range experienceSec.Lines {
				if isBullet(line) && containsAchievementVerb(line) {
					suggestions = append(suggestions, Suggestion{
						Skill:      skill,
						Section:    SectionExperience,
						Action:     ActionEnhanceBullet,
						Location:   fmt.Sprintf("Work Experience section, line %d", i+1),
						Rationale:  fmt.Sprintf("Add %q to this accomplishment: %q", skill, util.Truncate(strings.TrimSpace(line), 50)),
						Priority:   PriorityMedium,
						LineNumber: experienceSec.Start + i,
					})
					break
				}
			}
		}
	}
	return suggestions
}

// listTargetLine picks the last non-empty line of a list section that is not
// a bare header (one ending with a colon). Returns -1 when the section is
// missing or holds no such line.
func listTargetLine(sec *Section) int {
	if sec == nil {
		return -1
	}
	for i := len(sec.Lines) - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(sec.Lines[i])
		if trimmed != "" && !strings.HasSuffix(trimmed, ":") {
			return sec.Start + i
		}
	}
	return -1
}

func isBullet(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(trimmed)
	return strings.ContainsRune(bulletMarkers, r)
}

func containsAchievementVerb(line string) bool {
	lower := strings.ToLower(line)
	for _, verb := range achievementVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}

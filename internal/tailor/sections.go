package tailor

import "strings"

// Lines longer than this are prose, not section headers, even when they
// mention a cue word.
const headerLineMax = 50

// sectionCues maps section names to header keywords. Groups are probed in
// order and the first group containing a cue wins; a line opens at most one
// section.
var sectionCues = []struct {
	name string
	cues []string
}{
	{SectionSummary, []string{"summary", "objective", "profile", "about"}},
	{SectionSkills, []string{"skills", "technical skills", "expertise", "competencies"}},
	{SectionExperience, []string{"experience", "work history", "employment", "professional experience"}},
	{SectionEducation, []string{"education", "academic", "qualifications"}},
	{SectionProjects, []string{"projects", "portfolio"}},
	{SectionCertifications, []string{"certifications", "certificates", "licenses"}},
}

// SplitLines splits resume text into lines, keeping empty ones.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// Segment splits resume lines into an ordered list of named sections that
// covers every line exactly once. The cursor starts at "header"; a resume
// with no recognizable section headers comes back as a single header section.
func Segment(lines []string) []Section {
	if len(lines) == 0 {
		return nil
	}

	current := Section{Name: SectionHeader, Start: 0}
	var sections []Section
	for i, line := range lines {
		if name, ok := detectBoundary(line); ok {
			if len(current.Lines) > 0 {
				current.End = i - 1
				sections = append(sections, current)
			}
			current = Section{Name: name, Start: i}
		}
		current.Lines = append(current.Lines, line)
	}
	current.End = len(lines) - 1
	sections = append(sections, current)
	return sections
}

func detectBoundary(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= headerLineMax {
		return "", false
	}
	lower := strings.ToLower(trimmed)
	for _, group := range sectionCues {
		for _, cue := range group.cues {
			if strings.Contains(lower, cue) {
				return group.name, true
			}
		}
	}
	return "", false
}

func findSection(sections []Section, name string) *Section {
	for i := range sections {
		if sections[i].Name == name {
			return &sections[i]
		}
	}
	return nil
}

package tailor

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Apply edits the resume lines according to the suggestions and returns the
// tailored text plus the record of modifications. Edits are in-place on
// existing lines, so the tailored resume always has exactly as many lines as
// the original.
func Apply(lines []string, sections []Section, suggestions []Suggestion) (string, []Modification) {
	tailored := append([]string(nil), lines...)
	var mods []Modification

	// add_to_list suggestions collapse to one edit per target section;
	// enhancements collapse to one edit per target line.
	type listTarget struct {
		line   int
		skills []string
	}
	listBySection := make(map[string]*listTarget)
	var sectionOrder []string
	enhancements := make(map[int]Suggestion)
	var enhancedLines []int

	for _, s := range suggestions {
		switch s.Action {
		case ActionAddToList:
			target, ok := listBySection[s.Section]
			if !ok {
				target = &listTarget{line: s.LineNumber}
				listBySection[s.Section] = target
				sectionOrder = append(sectionOrder, s.Section)
			}
			target.skills = append(target.skills, s.Skill)
		case ActionEnhanceDescription, ActionEnhanceBullet:
			if _, ok := enhancements[s.LineNumber]; !ok {
				enhancements[s.LineNumber] = s
				enhancedLines = append(enhancedLines, s.LineNumber)
			}
		}
	}

	for _, name := range sectionOrder {
		target := listBySection[name]
		if target.line < 0 || target.line >= len(tailored) {
			continue
		}
		before := tailored[target.line]
		tailored[target.line] = appendToList(before, target.skills)
		mods = append(mods, Modification{
			Line:   target.line,
			Kind:   ModSkillAddition,
			Skills: target.skills,
			Before: before,
			After:  tailored[target.line],
		})
	}

	// Descending line order keeps earlier edits untouched by later ones.
	sort.Sort(sort.Reverse(sort.IntSlice(enhancedLines)))
	for _, n := range enhancedLines {
		if n < 0 || n >= len(tailored) {
			continue
		}
		s := enhancements[n]
		before := tailored[n]
		after, ok := enhanceBullet(before, s.Skill)
		if !ok {
			continue
		}
		tailored[n] = after
		mods = append(mods, Modification{
			Line:   n,
			Kind:   ModLineEnhancement,
			Skill:  s.Skill,
			Before: before,
			After:  after,
		})
	}

	return strings.Join(tailored, "\n"), mods
}

// appendToList appends the skills to a comma-separated list line, respecting
// an existing trailing separator.
func appendToList(line string, skills []string) string {
	joined := strings.Join(skills, ", ")
	base := strings.TrimRight(line, " \t")
	if strings.HasSuffix(base, ",") {
		return base + " " + joined
	}
	return base + ", " + joined
}

// enhanceBullet weaves the skill into a bullet line, preserving the marker
// and leading indentation. Non-bullet lines are left untouched.
func enhanceBullet(line, skill string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !isBullet(trimmed) {
		return line, false
	}

	marker, size := utf8.DecodeRuneInString(trimmed)
	text := strings.TrimSpace(trimmed[size:])
	body := strings.TrimRight(text, ".")

	var enhanced string
	lower := strings.ToLower(text)
	if strings.Contains(lower, "using") || strings.Contains(lower, "with") {
		enhanced = string(marker) + " " + body + ", " + skill
	} else {
		enhanced = string(marker) + " " + body + " using " + skill
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	return indent + enhanced, true
}

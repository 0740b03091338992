package tailor

import "testing"

func planFixture(t *testing.T) ([]string, []Section) {
	t.Helper()
	lines := SplitLines(sampleResume)
	return lines, Segment(lines)
}

func TestPlanSuggestsAllThreeActionsPerSkill(t *testing.T) {
	_, sections := planFixture(t)
	suggestions := Plan(sections, []string{"docker", "react"})

	if len(suggestions) != 6 {
		t.Fatalf("expected 6 suggestions, got %d: %+v", len(suggestions), suggestions)
	}
	byAction := make(map[string][]Suggestion)
	for _, s := range suggestions {
		byAction[s.Action] = append(byAction[s.Action], s)
	}
	if len(byAction[ActionAddToList]) != 2 {
		t.Fatalf("expected 2 add_to_list suggestions, got %+v", byAction[ActionAddToList])
	}
	for _, s := range byAction[ActionAddToList] {
		if s.Priority != PriorityHigh {
			t.Fatalf("add_to_list must be high priority: %+v", s)
		}
		if s.LineNumber != 7 {
			t.Fatalf("add_to_list must target the skills list line 7, got %d", s.LineNumber)
		}
	}
	for _, s := range byAction[ActionEnhanceBullet] {
		if s.LineNumber != 10 {
			t.Fatalf("enhance_bullet must target the first achievement bullet (line 10), got %d", s.LineNumber)
		}
		if s.Priority != PriorityMedium {
			t.Fatalf("enhance_bullet must be medium priority: %+v", s)
		}
	}
}

func TestPlanSkipsMissingSections(t *testing.T) {
	lines := SplitLines("Just prose with no structure at all, nothing resembling a resume header here.")
	suggestions := Plan(Segment(lines), []string{"docker"})
	if len(suggestions) != 0 {
		t.Fatalf("expected no suggestions without target sections, got %+v", suggestions)
	}
}

func TestPlanSkillsHeaderOnlySectionHasNoListTarget(t *testing.T) {
	lines := SplitLines("Skills:\nExperience:\n- Developed APIs")
	suggestions := Plan(Segment(lines), []string{"docker"})
	for _, s := range suggestions {
		if s.Action == ActionAddToList {
			t.Fatalf("bare skills header must not receive add_to_list: %+v", s)
		}
	}
}

func TestPlanSingleLineSkillsSection(t *testing.T) {
	lines := SplitLines("Skills: Python, SQL")
	suggestions := Plan(Segment(lines), []string{"docker"})
	if len(suggestions) != 1 || suggestions[0].Action != ActionAddToList || suggestions[0].LineNumber != 0 {
		t.Fatalf("expected one add_to_list on line 0, got %+v", suggestions)
	}
}

func TestPlanNoMissingSkills(t *testing.T) {
	_, sections := planFixture(t)
	if got := Plan(sections, nil); len(got) != 0 {
		t.Fatalf("expected no suggestions, got %+v", got)
	}
}

func TestListTargetLineSkipsTrailingBlanksAndHeaders(t *testing.T) {
	sec := &Section{Start: 4, Lines: []string{"Technical Skills", "Python, Go", "", "  "}}
	if got := listTargetLine(sec); got != 5 {
		t.Fatalf("expected line 5, got %d", got)
	}
	if got := listTargetLine(nil); got != -1 {
		t.Fatalf("expected -1 for nil section, got %d", got)
	}
}

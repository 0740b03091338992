package tailor

import (
	"strings"
	"testing"
)

func TestApplyAppendsToSingleLineSkillsList(t *testing.T) {
	lines := SplitLines("Skills: Python, SQL")
	sections := Segment(lines)
	suggestions := Plan(sections, []string{"Docker"})

	tailored, mods := Apply(lines, sections, suggestions)
	if tailored != "Skills: Python, SQL, Docker" {
		t.Fatalf("unexpected tailored text: %q", tailored)
	}
	if len(mods) != 1 {
		t.Fatalf("expected exactly one modification, got %+v", mods)
	}
	m := mods[0]
	if m.Kind != ModSkillAddition || m.Line != 0 {
		t.Fatalf("unexpected modification: %+v", m)
	}
	if m.Before != "Skills: Python, SQL" || m.After != "Skills: Python, SQL, Docker" {
		t.Fatalf("unexpected before/after: %+v", m)
	}
}

func TestApplyGroupsListAdditionsPerSection(t *testing.T) {
	lines := SplitLines("Skills: Python")
	sections := Segment(lines)
	suggestions := Plan(sections, []string{"docker", "react", "aws"})

	tailored, mods := Apply(lines, sections, suggestions)
	if tailored != "Skills: Python, docker, react, aws" {
		t.Fatalf("unexpected tailored text: %q", tailored)
	}
	if len(mods) != 1 {
		t.Fatalf("grouped additions must yield one modification, got %+v", mods)
	}
	if got := strings.Join(mods[0].Skills, ","); got != "docker,react,aws" {
		t.Fatalf("unexpected skills on modification: %q", got)
	}
}

func TestApplyRespectsTrailingComma(t *testing.T) {
	line := "Python, SQL,"
	if got := appendToList(line, []string{"go"}); got != "Python, SQL, go" {
		t.Fatalf("unexpected append: %q", got)
	}
}

func TestApplyKeepsLineCountStable(t *testing.T) {
	lines := SplitLines(sampleResume)
	sections := Segment(lines)
	suggestions := Plan(sections, []string{"docker", "kubernetes", "react"})

	tailored, _ := Apply(lines, sections, suggestions)
	if got, want := len(SplitLines(tailored)), len(lines); got != want {
		t.Fatalf("line count changed: got %d, want %d", got, want)
	}
}

func TestApplyOnePerLineFirstSuggestionWins(t *testing.T) {
	lines := []string{"Experience", "- Developed billing APIs"}
	sections := Segment(lines)
	suggestions := []Suggestion{
		{Skill: "docker", Section: SectionExperience, Action: ActionEnhanceBullet, LineNumber: 1},
		{Skill: "react", Section: SectionExperience, Action: ActionEnhanceBullet, LineNumber: 1},
	}

	tailored, mods := Apply(lines, sections, suggestions)
	if len(mods) != 1 || mods[0].Skill != "docker" {
		t.Fatalf("first suggestion per line must win, got %+v", mods)
	}
	if !strings.Contains(tailored, "- Developed billing APIs using docker") {
		t.Fatalf("unexpected tailored text: %q", tailored)
	}
}

func TestApplySkipsNonBulletEnhancementTargets(t *testing.T) {
	lines := []string{"Projects", "Some prose about work"}
	sections := Segment(lines)
	suggestions := []Suggestion{
		{Skill: "docker", Section: SectionProjects, Action: ActionEnhanceDescription, LineNumber: 0},
	}

	tailored, mods := Apply(lines, sections, suggestions)
	if len(mods) != 0 {
		t.Fatalf("non-bullet target must be skipped, got %+v", mods)
	}
	if tailored != strings.Join(lines, "\n") {
		t.Fatalf("text must be unchanged, got %q", tailored)
	}
}

func TestEnhanceBulletConnectorChoice(t *testing.T) {
	got, ok := enhanceBullet("- Built services using Python.", "docker")
	if !ok || got != "- Built services using Python, docker" {
		t.Fatalf("unexpected enhancement: %q (ok=%v)", got, ok)
	}

	got, ok = enhanceBullet("- Managed release pipeline", "terraform")
	if !ok || got != "- Managed release pipeline using terraform" {
		t.Fatalf("unexpected enhancement: %q (ok=%v)", got, ok)
	}
}

func TestEnhanceBulletPreservesMarkerAndIndent(t *testing.T) {
	got, ok := enhanceBullet("  • Implemented caching layer", "redis")
	if !ok || got != "  • Implemented caching layer using redis" {
		t.Fatalf("unexpected enhancement: %q (ok=%v)", got, ok)
	}
}

package upskilling

import (
	"reflect"
	"strings"
	"testing"
)

func TestPlanOneItemPerSkill(t *testing.T) {
	plan := Plan([]string{"docker", "machine learning"})
	if len(plan) != 2 {
		t.Fatalf("expected 2 items, got %d", len(plan))
	}

	first := plan[0]
	if first.Skill != "Docker" {
		t.Fatalf("skill must be title-cased, got %q", first.Skill)
	}
	if !strings.HasPrefix(first.CourseName, "Mastering Docker on ") || !strings.HasSuffix(first.CourseName, first.Platform) {
		t.Fatalf("unexpected course name: %q", first.CourseName)
	}
	if first.PracticeTask != "Build a small project using Docker" {
		t.Fatalf("unexpected practice task: %q", first.PracticeTask)
	}
	if first.Link != "#" {
		t.Fatalf("unexpected link: %q", first.Link)
	}
	if !strings.HasSuffix(first.Timeline, " weeks") {
		t.Fatalf("unexpected timeline: %q", first.Timeline)
	}

	if second := plan[1]; second.Skill != "Machine Learning" {
		t.Fatalf("multi-word skill must title-case each word, got %q", second.Skill)
	}
}

func TestPlanIsDeterministic(t *testing.T) {
	skills := []string{"docker", "react", "aws", "kubernetes"}
	if a, b := Plan(skills), Plan(skills); !reflect.DeepEqual(a, b) {
		t.Fatalf("plans differ across runs:\n%+v\n%+v", a, b)
	}
}

func TestPlanKnownPlatforms(t *testing.T) {
	known := map[string]bool{"Udemy": true, "Coursera": true, "WiLearn": true, "edX": true}
	for _, item := range Plan([]string{"go", "rust", "sql", "graphql", "vue"}) {
		if !known[item.Platform] {
			t.Fatalf("unknown platform %q", item.Platform)
		}
	}
}

func TestPlanEmpty(t *testing.T) {
	if got := Plan(nil); len(got) != 0 {
		t.Fatalf("expected empty plan, got %+v", got)
	}
}

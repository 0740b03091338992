package skills

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		if got := Extract(text); len(got) != 0 {
			t.Fatalf("expected empty set for %q, got %v", text, got)
		}
	}
}

func TestExtractWholeWordBoundary(t *testing.T) {
	got := Extract("Our stack is built entirely on JavaScript.")
	if !reflect.DeepEqual(got, []string{"javascript"}) {
		t.Fatalf("expected only javascript, got %v", got)
	}
	for _, term := range got {
		if term == "java" {
			t.Fatal("java must not match inside javascript")
		}
	}
}

func TestExtractNonWordTerminatedTerms(t *testing.T) {
	got := Extract("Experienced in C++ and C#, some Node.js too")
	want := []string{"c#", "c++", "node.js"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractCompoundTerms(t *testing.T) {
	got := Extract("Background in machine learning and problem solving; knows REST API design.")
	want := []string{"machine learning", "problem solving", "rest api"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractJobDescriptionScenario(t *testing.T) {
	jd := "Looking for a Python developer with React and AWS experience"
	if got, want := Extract(jd), []string{"aws", "python", "react"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	resume := "Skills: Python, Django\nExperience:\n- Built APIs"
	if got, want := Extract(resume), []string{"django", "python"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractIdempotent(t *testing.T) {
	first := Extract("Python, Docker and GraphQL in production")
	second := Extract(strings.Join(first, " "))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("extraction not idempotent: %v vs %v", first, second)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  Machine   Learning "); got != "machine learning" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}

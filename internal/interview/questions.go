package interview

import (
	"fmt"
	"hash/fnv"

	"skillfit-backend/internal/shared/util"
)

// Question is one suggested technical interview question.
type Question struct {
	Skill      string `json:"skill"`
	Question   string `json:"question"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
}

const maxQuestions = 5

var difficulties = []string{"easy", "medium", "hard"}

// templateGroups are enumerated in a fixed order so hashed selection is
// stable. Each template takes the skill name once or twice.
var templateGroups = []struct {
	category  string
	templates []string
}{
	{"Concept", []string{
		"Can you explain the key concepts and architecture of %s?",
		"What are the main advantages of using %s in a production environment?",
		"How does %s handle scalability and performance optimization?",
	}},
	{"Practical", []string{
		"Describe a challenging project where you used %s. What problems did you solve?",
		"Walk me through how you would implement a solution using %s for [specific use case].",
		"What best practices do you follow when working with %s?",
	}},
	{"Comparison", []string{
		"How does %s compare to alternative technologies in the same space?",
		"When would you choose %s over other similar tools or frameworks?",
	}},
	{"Troubleshooting", []string{
		"Describe a time when you encountered a difficult bug while using %s. How did you debug it?",
		"What are common pitfalls or challenges when working with %s?",
	}},
	{"Advanced", []string{
		"How would you optimize performance in a %s-based application?",
		"Explain how you would design a scalable system using %s.",
	}},
}

// Generate builds up to five interview questions from the matched skills.
// Difficulty cycles easy/medium/hard by position; the question template is
// picked by hashing the skill name, so output is stable for a given input.
func Generate(matchedSkills []string) []Question {
	if len(matchedSkills) == 0 {
		return nil
	}
	skills := matchedSkills
	if len(skills) > maxQuestions {
		skills = skills[:maxQuestions]
	}

	questions := make([]Question, 0, len(skills))
	for i, skill := range skills {
		group := templateGroups[hashOf(skill)%uint32(len(templateGroups))]
		template := group.templates[hashOf(skill+group.category)%uint32(len(group.templates))]
		questions = append(questions, Question{
			Skill:      util.Title(skill),
			Question:   fmt.Sprintf(template, skill),
			Difficulty: difficulties[i%len(difficulties)],
			Category:   group.category,
		})
	}
	return questions
}

func hashOf(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

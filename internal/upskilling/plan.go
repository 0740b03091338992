package upskilling

import (
	"fmt"
	"hash/fnv"

	"skillfit-backend/internal/shared/util"
)

var platforms = []string{"Udemy", "Coursera", "WiLearn", "edX"}

// Item is one learning-plan entry for a missing skill.
type Item struct {
	Skill        string `json:"skill"`
	CourseName   string `json:"courseName"`
	Platform     string `json:"platform"`
	Link         string `json:"link"`
	PracticeTask string `json:"practiceTask"`
	Timeline     string `json:"timeline"`
}

// Plan builds a learning plan for the missing skills. Platform and timeline
// are picked by hashing the skill name, so the same input always produces the
// same plan.
func Plan(missingSkills []string) []Item {
	plan := make([]Item, 0, len(missingSkills))
	for _, skill := range missingSkills {
		title := util.Title(skill)
		platform := platforms[hashOf(skill)%uint32(len(platforms))]
		weeks := hashOf(skill)%4 + 1
		plan = append(plan, Item{
			Skill:        title,
			CourseName:   fmt.Sprintf("Mastering %s on %s", title, platform),
			Platform:     platform,
			Link:         "#",
			PracticeTask: fmt.Sprintf("Build a small project using %s", title),
			Timeline:     fmt.Sprintf("%d weeks", weeks),
		})
	}
	return plan
}

func hashOf(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

package tailor

// Section names. "header" absorbs unclassified leading content.
const (
	SectionHeader         = "header"
	SectionSummary        = "summary"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionOther          = "other"
)

// Section is a contiguous block of resume lines. Start and End are inclusive,
// 0-indexed line numbers into the original resume.
type Section struct {
	Name  string   `json:"name"`
	Start int      `json:"start"`
	End   int      `json:"end"`
	Lines []string `json:"-"`
}

// Suggestion actions.
const (
	ActionAddToList          = "add_to_list"
	ActionEnhanceDescription = "enhance_description"
	ActionEnhanceBullet      = "enhance_bullet"
)

// Suggestion priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Suggestion ties a missing skill to a concrete insertion point in the
// segmented resume. Read-only once created; conflicts are resolved by Apply.
type Suggestion struct {
	Skill      string `json:"skill"`
	Section    string `json:"section"`
	Action     string `json:"action"`
	Location   string `json:"location"`
	Rationale  string `json:"rationale"`
	Priority   string `json:"priority"`
	LineNumber int    `json:"lineNumber"`
}

// Modification kinds.
const (
	ModSkillAddition   = "skill_addition"
	ModLineEnhancement = "line_enhancement"
)

// Modification is the authoritative record of one applied edit.
type Modification struct {
	Line   int      `json:"line"`
	Kind   string   `json:"kind"`
	Skills []string `json:"skills,omitempty"`
	Skill  string   `json:"skill,omitempty"`
	Before string   `json:"before"`
	After  string   `json:"after"`
}

// Highlight kinds.
const (
	HighlightAddition     = "addition"
	HighlightModification = "modification"
)

// Highlight describes one textual difference on a line. Position is the rune
// offset into the original line where the change applies; Original is the
// replaced substring (empty for pure additions) and New its replacement.
type Highlight struct {
	Line     int    `json:"line"`
	Kind     string `json:"kind"`
	Position int    `json:"position"`
	Original string `json:"original,omitempty"`
	New      string `json:"new"`
	Context  string `json:"context"`
}

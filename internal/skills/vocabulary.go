package skills

// vocabulary is the curated list of technical and soft skills recognized by
// the extractor. Compound terms are allowed; matching is whole-word and
// case-insensitive. Enumeration order is fixed so extraction is deterministic.
var vocabulary = []string{
	"python", "java", "javascript", "react", "node.js", "flask", "django", "html", "css",
	"sql", "nosql", "mongodb", "postgresql", "aws", "azure", "docker", "kubernetes",
	"git", "agile", "scrum", "communication", "leadership", "problem solving",
	"machine learning", "data analysis", "pandas", "numpy", "tensorflow", "pytorch",
	"c++", "c#", "go", "rust", "typescript", "angular", "vue", "rest api", "graphql",
}

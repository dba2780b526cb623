// Package catalog provides the fixed reference tables used for resume keyword matching.
package catalog

import "strings"

// Category identifies a skill category bucket.
type Category string

// Skill category buckets. Each catalog skill belongs to exactly one.
const (
	CategoryLanguage  Category = "language"
	CategoryFramework Category = "framework"
	CategoryDatabase  Category = "database"
	CategoryCloud     Category = "cloud"
	CategoryDataAI    Category = "data_ai"
	CategoryDesign    Category = "design"
)

// skillCatalog is the reference skill list in match order. Extraction returns
// skills in this order ("first match wins" is catalog order, not text order).
// That ordering is relied on by consumers, do not reorder casually.
var skillCatalog = []string{
	// Languages
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Rust",
	"PHP", "Ruby", "Swift", "Kotlin", "Scala", "MATLAB", "Perl", "Dart",
	"Elixir", "Haskell",
	// Frameworks
	"React", "Angular", "Vue", "Svelte", "Next.js", "Node.js", "Express",
	"Django", "Flask", "FastAPI", "Spring", "Laravel", "Rails", "ASP.NET",
	"jQuery", "Bootstrap", "Tailwind", "Flutter", "React Native",
	// Databases
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle",
	"Cassandra", "DynamoDB", "Elasticsearch", "Firebase", "Supabase",
	// Cloud / DevOps
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Jenkins",
	"Git", "GitHub", "GitLab", "CI/CD", "Linux", "Nginx", "Ansible",
	// Data / AI
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Keras",
	"Scikit-learn", "Pandas", "NumPy", "NLP", "Computer Vision",
	"Data Analysis", "Data Science",
	// Design / misc
	"Figma", "Photoshop", "Illustrator", "UI/UX", "Agile", "Scrum", "Jira",
	"REST API", "GraphQL", "Microservices", "Selenium", "Unit Testing",
}

// skillCategories maps every catalog skill to its category bucket.
var skillCategories = map[string]Category{
	"JavaScript": CategoryLanguage, "TypeScript": CategoryLanguage,
	"Python": CategoryLanguage, "Java": CategoryLanguage,
	"C++": CategoryLanguage, "C#": CategoryLanguage, "Go": CategoryLanguage,
	"Rust": CategoryLanguage, "PHP": CategoryLanguage, "Ruby": CategoryLanguage,
	"Swift": CategoryLanguage, "Kotlin": CategoryLanguage,
	"Scala": CategoryLanguage, "MATLAB": CategoryLanguage,
	"Perl": CategoryLanguage, "Dart": CategoryLanguage,
	"Elixir": CategoryLanguage, "Haskell": CategoryLanguage,

	"React": CategoryFramework, "Angular": CategoryFramework,
	"Vue": CategoryFramework, "Svelte": CategoryFramework,
	"Next.js": CategoryFramework, "Node.js": CategoryFramework,
	"Express": CategoryFramework, "Django": CategoryFramework,
	"Flask": CategoryFramework, "FastAPI": CategoryFramework,
	"Spring": CategoryFramework, "Laravel": CategoryFramework,
	"Rails": CategoryFramework, "ASP.NET": CategoryFramework,
	"jQuery": CategoryFramework, "Bootstrap": CategoryFramework,
	"Tailwind": CategoryFramework, "Flutter": CategoryFramework,
	"React Native": CategoryFramework,

	"SQL": CategoryDatabase, "MySQL": CategoryDatabase,
	"PostgreSQL": CategoryDatabase, "MongoDB": CategoryDatabase,
	"Redis": CategoryDatabase, "SQLite": CategoryDatabase,
	"Oracle": CategoryDatabase, "Cassandra": CategoryDatabase,
	"DynamoDB": CategoryDatabase, "Elasticsearch": CategoryDatabase,
	"Firebase": CategoryDatabase, "Supabase": CategoryDatabase,

	"AWS": CategoryCloud, "Azure": CategoryCloud, "GCP": CategoryCloud,
	"Docker": CategoryCloud, "Kubernetes": CategoryCloud,
	"Terraform": CategoryCloud, "Jenkins": CategoryCloud,
	"Git": CategoryCloud, "GitHub": CategoryCloud, "GitLab": CategoryCloud,
	"CI/CD": CategoryCloud, "Linux": CategoryCloud, "Nginx": CategoryCloud,
	"Ansible": CategoryCloud,

	"Machine Learning": CategoryDataAI, "Deep Learning": CategoryDataAI,
	"TensorFlow": CategoryDataAI, "PyTorch": CategoryDataAI,
	"Keras": CategoryDataAI, "Scikit-learn": CategoryDataAI,
	"Pandas": CategoryDataAI, "NumPy": CategoryDataAI, "NLP": CategoryDataAI,
	"Computer Vision": CategoryDataAI, "Data Analysis": CategoryDataAI,
	"Data Science": CategoryDataAI,

	"Figma": CategoryDesign, "Photoshop": CategoryDesign,
	"Illustrator": CategoryDesign, "UI/UX": CategoryDesign,
	"Agile": CategoryDesign, "Scrum": CategoryDesign, "Jira": CategoryDesign,
	"REST API": CategoryDesign, "GraphQL": CategoryDesign,
	"Microservices": CategoryDesign, "Selenium": CategoryDesign,
	"Unit Testing": CategoryDesign,
}

// highValueSkills is the subset of catalog skills that carry a market premium
// in skill-rating computation.
var highValueSkills = map[string]bool{
	"React": true, "Node.js": true, "Python": true, "TypeScript": true,
	"Go": true, "Rust": true, "AWS": true, "Docker": true,
	"Kubernetes": true, "Terraform": true, "GraphQL": true,
	"PostgreSQL": true, "MongoDB": true, "Redis": true,
	"Elasticsearch": true, "Machine Learning": true, "TensorFlow": true,
	"PyTorch": true, "Microservices": true, "Next.js": true, "Swift": true,
}

// Skills returns the reference skill catalog in match order.
func Skills() []string {
	out := make([]string, len(skillCatalog))
	copy(out, skillCatalog)
	return out
}

// CategoryOf returns the category bucket for a catalog skill, matched
// case-insensitively. The second return is false for unknown skills.
func CategoryOf(skill string) (Category, bool) {
	if c, ok := skillCategories[skill]; ok {
		return c, true
	}
	for name, c := range skillCategories {
		if strings.EqualFold(name, skill) {
			return c, true
		}
	}
	return "", false
}

// IsHighValue reports whether a skill belongs to the high-value subset.
func IsHighValue(skill string) bool {
	if highValueSkills[skill] {
		return true
	}
	for name := range highValueSkills {
		if strings.EqualFold(name, skill) {
			return true
		}
	}
	return false
}

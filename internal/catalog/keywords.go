package catalog

// technicalTerms are technology-adjacent keywords that signal hands-on work.
var technicalTerms = []string{
	"algorithm", "api", "architecture", "automation", "backend", "frontend",
	"full-stack", "cloud", "database", "debugging", "deployment", "devops",
	"distributed", "encryption", "framework", "infrastructure", "integration",
	"microservice", "migration", "optimization", "performance", "pipeline",
	"refactoring", "scalability", "scaling", "security", "serverless",
	"testing", "version control", "web application", "mobile application",
	"machine learning", "data pipeline", "etl", "caching", "load balancing",
	"monitoring", "observability", "containerization", "orchestration",
}

// professionalTerms are workplace and soft-skill keywords.
var professionalTerms = []string{
	"agile", "collaboration", "communication", "cross-functional",
	"deadline", "delivery", "documentation", "initiative", "leadership",
	"mentoring", "ownership", "planning", "presentation", "prioritization",
	"problem solving", "product", "requirements", "roadmap", "stakeholder",
	"standup", "strategy", "teamwork", "workflow", "code review", "sprint",
	"retrospective", "onboarding", "best practices", "process improvement",
}

// experienceTerms are employment and tenure keywords.
var experienceTerms = []string{
	"years of experience", "work experience", "professional experience",
	"employed", "promoted", "intern", "internship", "contractor",
	"freelance", "consultant", "full-time", "part-time", "startup",
	"enterprise", "client", "customer", "production", "launched",
	"shipped", "maintained", "on-call", "team of", "reported to",
	"hired", "recruited",
}

// achievementTerms are accomplishment keywords.
var achievementTerms = []string{
	"achieved", "awarded", "built", "created", "decreased", "delivered",
	"designed", "developed", "drove", "exceeded", "founded", "grew",
	"implemented", "improved", "increased", "initiated", "optimized",
	"published", "reduced", "saved", "solved", "streamlined", "won",
	"patent", "certification", "recognized",
}

// seniorityTerms mark senior-level role titles.
var seniorityTerms = []string{
	"Senior", "Lead", "Principal", "Architect", "Manager", "Director",
}

// leadershipVerbs mark people-leadership activity anywhere in resume text.
var leadershipVerbs = []string{
	"led", "managed", "mentored", "coordinated", "supervised", "directed",
	"spearheaded", "oversaw",
}

// leadershipTitles mark leadership role titles inside experience entries.
var leadershipTitles = []string{
	"Lead", "Manager", "Director", "Head", "Chief", "VP",
}

// prestigiousCompanies is the fixed big-tech employer list.
var prestigiousCompanies = []string{
	"Google", "Microsoft", "Amazon", "Apple", "Meta", "Facebook",
	"Netflix", "Tesla", "Uber", "Airbnb", "Stripe", "LinkedIn",
}

// eliteUniversities is the fixed elite-institution list.
var eliteUniversities = []string{
	"MIT", "Stanford", "Harvard", "Berkeley", "Carnegie Mellon",
	"Caltech", "Princeton", "Yale", "Oxford", "Cambridge",
}

// Degree-tier terms, checked highest tier first. PhD and Master tiers are
// mutually exclusive in scoring (highest wins).
var (
	phdTerms      = []string{"PhD", "Ph.D", "Doctorate", "Doctoral"}
	masterTerms   = []string{"Master", "M.S.", "MSc", "M.Tech", "MBA"}
	bachelorTerms = []string{"Bachelor", "B.S.", "BSc", "B.Tech", "B.E.", "Undergraduate"}
)

// technicalFields are degree fields that count as technical for education scoring.
var technicalFields = []string{
	"Computer Science", "Software Engineering", "Computer Engineering",
	"Information Technology", "Data Science", "Electrical Engineering",
	"Mathematics", "Statistics",
}

// academicAchievementTerms mark academic distinction.
var academicAchievementTerms = []string{
	"summa cum laude", "magna cum laude", "cum laude", "dean's list",
	"honors", "scholarship", "valedictorian", "first class", "gold medal",
}

// internshipTerms mark internship-type experience.
var internshipTerms = []string{"intern", "internship", "co-op", "trainee"}

// freelanceTerms mark freelance or contract experience.
var freelanceTerms = []string{"freelance", "contract", "consultant", "self-employed"}

// KeywordTerms returns the combined reference keyword list used for the
// keyword-match count: technical, professional, experience, and achievement
// terms, in that order. Each term contributes at most one match regardless of
// how often it repeats in the text.
func KeywordTerms() []string {
	out := make([]string, 0,
		len(technicalTerms)+len(professionalTerms)+len(experienceTerms)+len(achievementTerms))
	out = append(out, technicalTerms...)
	out = append(out, professionalTerms...)
	out = append(out, experienceTerms...)
	out = append(out, achievementTerms...)
	return out
}

// SeniorityTerms returns the senior-title markers.
func SeniorityTerms() []string { return seniorityTerms }

// LeadershipVerbs returns the people-leadership verb list.
func LeadershipVerbs() []string { return leadershipVerbs }

// LeadershipTitles returns the leadership role-title list.
func LeadershipTitles() []string { return leadershipTitles }

// PrestigiousCompanies returns the fixed big-tech employer list.
func PrestigiousCompanies() []string { return prestigiousCompanies }

// EliteUniversities returns the fixed elite-institution list.
func EliteUniversities() []string { return eliteUniversities }

// PhDTerms returns doctorate-tier degree markers.
func PhDTerms() []string { return phdTerms }

// MasterTerms returns master-tier degree markers.
func MasterTerms() []string { return masterTerms }

// BachelorTerms returns bachelor-tier degree markers.
func BachelorTerms() []string { return bachelorTerms }

// TechnicalFields returns degree fields counted as technical.
func TechnicalFields() []string { return technicalFields }

// AcademicAchievementTerms returns the academic distinction markers.
func AcademicAchievementTerms() []string { return academicAchievementTerms }

// InternshipTerms returns internship-type experience markers.
func InternshipTerms() []string { return internshipTerms }

// FreelanceTerms returns freelance/contract experience markers.
func FreelanceTerms() []string { return freelanceTerms }

// Package taxonomy defines the closed set of skill categories and their
// classification into technical, soft, and methodology groups used for
// weighted scoring.
package taxonomy

// Category is a skill taxonomy category.
type Category string

// Skill categories. The set is closed; extraction output uses these values.
const (
	// Technical
	ProgrammingLanguages Category = "programming_languages"
	FrameworksLibraries  Category = "frameworks_libraries"
	ToolsPlatforms       Category = "tools_platforms"
	Databases            Category = "databases"
	CloudServices        Category = "cloud_services"
	DevOps               Category = "devops"
	SoftwareArchitecture Category = "software_architecture"
	MachineLearning      Category = "machine_learning"
	Blockchain           Category = "blockchain"
	Cybersecurity        Category = "cybersecurity"
	DataScience          Category = "data_science"

	// Soft skills
	Leadership         Category = "leadership"
	Communication      Category = "communication"
	Collaboration      Category = "collaboration"
	ProblemSolving     Category = "problem_solving"
	AnalyticalThinking Category = "analytical_thinking"

	// Methodologies
	Agile          Category = "agile"
	Scrum          Category = "scrum"
	CICD           Category = "ci_cd"
	DesignThinking Category = "design_thinking"

	// Education & certifications
	Education      Category = "education"
	Certifications Category = "certifications"

	// Domain verticals
	Fintech      Category = "fintech"
	HealthcareIT Category = "healthcare_it"
	ECommerce    Category = "e_commerce"
	Other        Category = "other"
)

// Class is the scoring group a category belongs to.
type Class string

// Scoring classes. Technical and Soft drive the weighted sub-scores;
// Methodology and Other count toward totals but neither sub-score.
const (
	ClassTechnical   Class = "technical"
	ClassSoft        Class = "soft"
	ClassMethodology Class = "methodology"
	ClassOther       Class = "other"
)

// categoryClasses is the static category -> class lookup table.
var categoryClasses = map[Category]Class{
	ProgrammingLanguages: ClassTechnical,
	FrameworksLibraries:  ClassTechnical,
	ToolsPlatforms:       ClassTechnical,
	Databases:            ClassTechnical,
	CloudServices:        ClassTechnical,
	DevOps:               ClassTechnical,
	SoftwareArchitecture: ClassTechnical,
	MachineLearning:      ClassTechnical,
	Blockchain:           ClassTechnical,
	Cybersecurity:        ClassTechnical,
	DataScience:          ClassTechnical,

	Leadership:         ClassSoft,
	Communication:      ClassSoft,
	Collaboration:      ClassSoft,
	ProblemSolving:     ClassSoft,
	AnalyticalThinking: ClassSoft,

	Agile:          ClassMethodology,
	Scrum:          ClassMethodology,
	CICD:           ClassMethodology,
	DesignThinking: ClassMethodology,
}

// ClassOf returns the scoring class for a category. Categories outside the
// lookup table (education, certifications, domain verticals, unrecognized
// strings) are ClassOther.
func ClassOf(c Category) Class {
	if class, ok := categoryClasses[c]; ok {
		return class
	}
	return ClassOther
}

// IsTechnical reports whether the category counts toward the technical sub-score.
func IsTechnical(c Category) bool {
	return ClassOf(c) == ClassTechnical
}

// IsSoft reports whether the category counts toward the soft-skills sub-score.
func IsSoft(c Category) bool {
	return ClassOf(c) == ClassSoft
}

// Descriptions maps each category to a human-readable description.
var Descriptions = map[Category]string{
	ProgrammingLanguages: "Programming languages (Python, Java, JavaScript, etc.)",
	FrameworksLibraries:  "Frameworks and libraries (React, Django, Spring Boot, etc.)",
	ToolsPlatforms:       "Development tools and platforms (Git, Docker, AWS, etc.)",
	Databases:            "Database technologies (PostgreSQL, MongoDB, Redis, etc.)",
	CloudServices:        "Cloud services (AWS, Azure, GCP, etc.)",
	DevOps:               "DevOps tools and practices (Kubernetes, Terraform, Jenkins, etc.)",
	SoftwareArchitecture: "Software architecture patterns and concepts",
	MachineLearning:      "Machine learning and AI technologies",
	Blockchain:           "Blockchain technologies (Solidity, Ethereum, etc.)",
	Cybersecurity:        "Cybersecurity skills and tools",
	DataScience:          "Data science and analytics",
	Leadership:           "Leadership skills",
	Communication:        "Communication skills",
	Collaboration:        "Collaboration and teamwork",
	ProblemSolving:       "Problem-solving abilities",
	AnalyticalThinking:   "Analytical thinking",
	Agile:                "Agile methodologies",
	Scrum:                "Scrum practices",
	CICD:                 "CI/CD practices",
	DesignThinking:       "Design thinking",
	Education:            "Education requirements",
	Certifications:       "Professional certifications",
	Fintech:              "Financial technology domain",
	HealthcareIT:         "Healthcare IT domain",
	ECommerce:            "E-commerce domain",
	Other:                "Other skills",
}

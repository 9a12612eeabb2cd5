package normalize

// AliasTable maps a canonical skill name to the surface forms that should
// resolve to it. Tables are immutable configuration injected at
// construction; DefaultAliasTable covers the common cases seen in resumes
// and job postings.
type AliasTable map[string][]string

// DefaultAliasTable returns the built-in alias table.
func DefaultAliasTable() AliasTable {
	return AliasTable{
		// Programming languages
		"javascript": {"js", "ecmascript"},
		"typescript": {"ts"},
		"python":     {"py"},
		"go":         {"golang", "go lang"},
		"c++":        {"cpp", "c plus plus"},
		"c#":         {"csharp", "c sharp", "dotnet", ".net"},
		"java":       {"jvm"},

		// Frameworks and libraries
		"react":       {"reactjs", "react.js"},
		"angular":     {"angularjs", "angular.js"},
		"vue":         {"vuejs", "vue.js"},
		"node.js":     {"nodejs", "node"},
		"spring boot": {"springboot", "spring"},

		// Tools and platforms
		"aws":        {"amazon web services", "amazon aws"},
		"azure":      {"microsoft azure"},
		"gcp":        {"google cloud", "google cloud platform"},
		"kubernetes": {"k8s"},
		"docker":     {"docker containers"},
		"ci/cd":      {"cicd", "continuous integration", "continuous deployment"},

		// Databases
		"postgresql": {"postgres"},
		"mongodb":    {"mongo"},

		// Methodologies
		"agile": {"agile methodology", "agile development"},
		"scrum": {"scrum methodology"},

		// Soft skills
		"problem solving": {"troubleshooting", "debugging"},
		"communication":   {"communication skills", "verbal communication", "written communication"},
		"leadership":      {"leadership skills", "team leadership"},
		"collaboration":   {"teamwork", "team collaboration"},
	}
}

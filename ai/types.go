package ai

// Requirements is the structured form of a hiring query as understood by a
// RequirementExtractor.
type Requirements struct {
	// Skills are the technical skill keywords the query asks for, lowercase.
	// Example: "java", "structured query language"
	Skills []string

	// SoftSkills are the behavioral and interpersonal keywords, lowercase.
	// Example: "communication", "leadership"
	SoftSkills []string

	// TestTypes are the preferred assessment category codes, e.g. "K" for
	// knowledge and skills or "P" for personality and behavior.
	TestTypes []string

	// KeyFocus summarizes the query's emphasis: "technical", "soft", or
	// "mixed". Empty when the extractor could not tell.
	KeyFocus string
}

// CandidateSummary is the view of a shortlisted assessment handed to a
// Reranker. It deliberately omits scores so the reranker judges relevance
// from content alone.
type CandidateSummary struct {
	Name        string
	Description string
}

// TestTypeCodes lists the assessment category codes an extractor may emit.
var TestTypeCodes = []string{
	"K", // knowledge and skills
	"P", // personality and behavior
	"C", // cognitive and aptitude
	"S", // simulations
}

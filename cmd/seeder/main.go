// Command seeder generates a mock scraper-style catalog JSON file for
// local development and evaluation runs.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/poiesic/assessrec/core"
)

// seedAssessment is a template for one generated catalog entry. Names and
// descriptions carry real skill terms so the generated catalog exercises
// skill extraction the same way scraped data does.
type seedAssessment struct {
	slug        string
	name        string
	description string
}

var seeds = []seedAssessment{
	{"java-8-basic", "Java 8 Basic", "Entry level test covering Java syntax, collections and exception handling."},
	{"java-8-advanced", "Java 8 Advanced", "Advanced Java programming with streams, concurrency and JVM internals."},
	{"core-java-entry", "Core Java Entry Level", "Fundamentals of Java programming for new developers."},
	{"python-basic", "Python Basic", "Python programming fundamentals including data structures and functions."},
	{"python-data", "Python for Data Analysis", "Python with pandas and numpy for data wrangling and analysis."},
	{"javascript-basic", "JavaScript Basic", "JavaScript language fundamentals for front end development."},
	{"node-js", "Node.js Development", "Server side JavaScript with Node.js, express and asynchronous patterns."},
	{"sql-server", "SQL Server Analysis", "Writing and optimizing SQL queries against relational databases."},
	{"selenium", "Selenium Automation", "Automated testing of web applications with Selenium WebDriver."},
	{"manual-testing", "Manual Testing Professional", "Test case design, defect reporting and quality assurance practice."},
	{"excel-365", "Microsoft Excel 365", "Spreadsheets, formulas, pivot tables and data presentation in Excel."},
	{"html-css", "HTML and CSS Essentials", "Building responsive layouts with semantic HTML and modern CSS."},
	{"csharp-basic", "C# Programming Basic", "C# language fundamentals on the .NET platform."},
	{"devops-tools", "DevOps Tooling", "CI pipelines, docker containers and infrastructure automation."},
	{"interpersonal", "Interpersonal Communications", "Measures communication style and collaboration with colleagues."},
	{"opq", "Occupational Personality Questionnaire", "Workplace personality profile covering teamwork and leadership potential."},
	{"leadership-judgement", "Leadership Judgement Indicator", "Situational judgement of leadership and people management decisions."},
	{"teamwork-styles", "Teamwork Styles", "Preferences for collaboration, negotiation and conflict resolution."},
	{"customer-focus", "Customer Service Focus", "Attitudes toward customer service, empathy and adaptability."},
	{"verbal-reasoning", "Verbal Reasoning", "Comprehension and evaluation of written business information."},
	{"numerical-reasoning", "Numerical Reasoning", "Interpretation of numerical data, tables and charts."},
	{"inductive-reasoning", "Inductive Reasoning", "Identifying patterns and logical rules in abstract sequences."},
	{"deductive-reasoning", "Deductive Reasoning", "Drawing sound conclusions from given premises."},
	{"contact-center-sim", "Contact Center Simulation", "Simulated customer interactions measuring service and communication."},
	{"coding-sim", "Coding Simulation", "Hands-on programming exercise in a sandboxed environment."},
}

// record mirrors the scraper's loose output schema, including string-typed
// support flags, so generated files look like real scrapes.
type record struct {
	Name            string `json:"name"`
	URL             string `json:"url"`
	Description     string `json:"description"`
	TestType        string `json:"test_type"`
	Duration        int    `json:"duration"`
	AdaptiveSupport string `json:"adaptive_support"`
	RemoteSupport   string `json:"remote_support"`
}

var (
	outFile = flag.String("out", "catalog.json", "output file for the generated catalog")
	baseURL = flag.String("base-url", "https://example.com/solutions/products/product-catalog/view", "base URL for assessment keys")
	seed    = flag.Int64("seed", 42, "random seed for durations and support flags")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// inferTestType derives a test type code from name keywords, the way the
// mock data would be labeled by a human skimming titles.
func inferTestType(name string) core.TestType {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "simulation"):
		return core.TestTypeSimulation
	case strings.Contains(n, "reasoning") || strings.Contains(n, "cognitive"):
		return core.TestTypeCognitive
	case strings.Contains(n, "personality") || strings.Contains(n, "interpersonal") ||
		strings.Contains(n, "leadership") || strings.Contains(n, "teamwork") ||
		strings.Contains(n, "customer"):
		return core.TestTypePersonality
	default:
		return core.TestTypeKnowledge
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func main() {
	rng := rand.New(rand.NewSource(*seed))

	records := make([]record, 0, len(seeds))
	for _, s := range seeds {
		records = append(records, record{
			Name:            s.name,
			URL:             fmt.Sprintf("%s/%s/", *baseURL, s.slug),
			Description:     s.description,
			TestType:        string(inferTestType(s.name)),
			Duration:        15 + 5*rng.Intn(10),
			AdaptiveSupport: yesNo(rng.Intn(4) == 0),
			RemoteSupport:   yesNo(rng.Intn(4) != 0),
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(*outFile, append(data, '\n'), 0o644); err != nil {
		panic(err)
	}

	slog.Info("catalog generated", "path", *outFile, "assessments", len(records))
}

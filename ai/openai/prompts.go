package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/assessrec/ai"
)

const requirementsResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "skills": {
      "type": "array",
      "items": {
        "type": "string",
        "pattern": "^[a-z0-9+#.]+( [a-z0-9+#.]+)*$"
      }
    },
    "soft_skills": {
      "type": "array",
      "items": {
        "type": "string",
        "pattern": "^[a-z0-9+#.]+( [a-z0-9+#.]+)*$"
      }
    },
    "test_types": {
      "type": "array",
      "items": {
        "type": "string",
        "enum": ["K", "P", "C", "S"]
      }
    },
    "key_focus": {
      "type": "string",
      "enum": ["technical", "soft", "mixed"]
    }
  },
  "required": ["skills", "soft_skills", "test_types", "key_focus"],
  "additionalProperties": false
}`

const requirementsPromptTemplate = `Extract the hiring requirements from the given query and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "skills" are concrete technical abilities the query asks for: programming languages, tools, technologies.
  Lowercase, 1-3 words each. Expand abbreviations (sql becomes "structured query language").
- "soft_skills" are behavioral and interpersonal abilities: communication, leadership, collaboration.
  Lowercase, 1-3 words each.
- "test_types" are the assessment categories the query calls for: %s.
  K = knowledge and skills, P = personality and behavior, C = cognitive and aptitude, S = simulations.
- "key_focus" is "technical" when the query is mostly about technical skills, "soft" when mostly
  behavioral, "mixed" when both matter.
- Include only requirements that are explicitly mentioned or clearly implied. Do not hallucinate.
- If the query names no skills of a kind, return an empty array for it.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "I am hiring for Java developers who can also collaborate effectively with my business teams."
Output:
{
  "skills": ["java"],
  "soft_skills": ["collaboration", "communication"],
  "test_types": ["K", "P"],
  "key_focus": "mixed"
}

Example (informal, abbreviations):
Input: "need someone good with sql and excel"
Output:
{
  "skills": ["structured query language", "excel"],
  "soft_skills": [],
  "test_types": ["K"],
  "key_focus": "technical"
}

Example (soft skills only):
Input: "looking for a manager with strong leadership and people skills"
Output:
{
  "skills": [],
  "soft_skills": ["leadership", "interpersonal"],
  "test_types": ["P"],
  "key_focus": "soft"
}`

const rerankResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "ranking": {
      "type": "array",
      "items": {
        "type": "integer",
        "minimum": 0
      }
    }
  },
  "required": ["ranking"],
  "additionalProperties": false
}`

const rerankPromptTemplate = `You are ranking assessments for a hiring query. Below is a numbered list of
candidate assessments. Return the indices of the %d most relevant candidates, most relevant first, as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Indices refer to the numbered candidate list; index 0 is the first candidate.
- Each index must appear at most once.
- Return exactly %d indices, or fewer only if there are fewer candidates.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Query:
%s

Candidates:
%s`

// buildRequirementsPrompt creates the system prompt for query understanding.
func buildRequirementsPrompt() string {
	return fmt.Sprintf(requirementsPromptTemplate,
		requirementsResponseSchema,
		strings.Join(ai.TestTypeCodes, ", "))
}

// buildRerankPrompt embeds the query and candidate list into the rerank prompt.
func buildRerankPrompt(query string, candidates []ai.CandidateSummary, k int) string {
	var b strings.Builder
	for i, c := range candidates {
		fmt.Fprintf(&b, "%d. %s", i, c.Name)
		if c.Description != "" {
			fmt.Fprintf(&b, " -- %s", c.Description)
		}
		b.WriteByte('\n')
	}
	return fmt.Sprintf(rerankPromptTemplate, k, rerankResponseSchema, k, query, b.String())
}

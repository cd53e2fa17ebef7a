package prompt

import "fmt"

// Version identifies the system prompt and result schema pair sent upstream.
// Bump it whenever either one changes.
const Version = "contract-review/v1"

const (
	contractOpen  = "<<<CONTRACT"
	contractClose = "CONTRACT>>>"
)

const systemPrompt = `You are a contract review assistant for freelancers and small businesses. You must produce one valid JSON object only (no markdown, no commentary, no code fences) that follows the schema below.

Requirements:
- Output must be a single JSON object.
- riskLevel is one of: low, medium, high.
- Every issue has a category (payment, scope, ip, termination, liability, confidentiality, other) and a severity (low, medium, high).
- clauseSnippet quotes the relevant contract text verbatim and briefly.
- If no issues are found, return an empty issues array.
- missingClauses and recommendedActions are arrays of short strings; use empty arrays when there is nothing to report.
- Describe risks and practical suggestions only. Do not phrase anything as legal advice and do not tell the reader what they are legally obliged to do.

Schema (example with empty values):
{
  "riskLevel": "<low|medium|high>",
  "executiveSummary": "<string>",
  "issues": [
    {
      "category": "<payment|scope|ip|termination|liability|confidentiality|other>",
      "severity": "<low|medium|high>",
      "title": "<string>",
      "explanation": "<string>",
      "suggestion": "<string>",
      "clauseSnippet": "<string>"
    }
  ],
  "missingClauses": ["<string>"],
  "recommendedActions": ["<string>"]
}`

// SystemPrompt returns the fixed review instructions, including the output schema.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt wraps the contract text in a delimited block.
func UserPrompt(contractText string) string {
	return fmt.Sprintf("Review the following contract and respond with the JSON per schema.\n\n%s\n%s\n%s",
		contractOpen, contractText, contractClose)
}

package prompt

var (
	riskLevels = []any{"low", "medium", "high"}
	categories = []any{"payment", "scope", "ip", "termination", "liability", "confidentiality", "other"}
)

// ResultSchema describes the JSON object the system prompt asks for.
// It is advisory: the service never rejects a result that does not match.
func ResultSchema() map[string]any {
	stringList := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
	issue := map[string]any{
		"type":     "object",
		"required": []any{"category", "severity", "title", "explanation", "suggestion", "clauseSnippet"},
		"properties": map[string]any{
			"category":      map[string]any{"type": "string", "enum": categories},
			"severity":      map[string]any{"type": "string", "enum": riskLevels},
			"title":         map[string]any{"type": "string"},
			"explanation":   map[string]any{"type": "string"},
			"suggestion":    map[string]any{"type": "string"},
			"clauseSnippet": map[string]any{"type": "string"},
		},
	}
	return map[string]any{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"title":    "contract review result " + Version,
		"type":     "object",
		"required": []any{"riskLevel", "executiveSummary", "issues", "missingClauses", "recommendedActions"},
		"properties": map[string]any{
			"riskLevel":          map[string]any{"type": "string", "enum": riskLevels},
			"executiveSummary":   map[string]any{"type": "string"},
			"issues":             map[string]any{"type": "array", "items": issue},
			"missingClauses":     stringList,
			"recommendedActions": stringList,
		},
	}
}

package toolkit

import "strings"

var sqlKeywords = []string{"SELECT", "FROM", "WHERE", "INSERT", "UPDATE", "DELETE"}

// CheckSyntax runs a naive syntax sanity check over a SQL statement:
// terminating semicolon, balanced parentheses, presence of a command
// keyword. It is not a parser.
func CheckSyntax(sqlQuery string) string {
	if !strings.HasSuffix(strings.TrimSpace(sqlQuery), ";") {
		return "SQL syntax error: Query should end with a semicolon."
	}

	if strings.Count(sqlQuery, "(") != strings.Count(sqlQuery, ")") {
		return "SQL syntax error: Unbalanced parentheses."
	}

	upper := strings.ToUpper(sqlQuery)
	hasKeyword := false
	for _, keyword := range sqlKeywords {
		if strings.Contains(upper, keyword) {
			hasKeyword = true
			break
		}
	}
	if !hasKeyword {
		return "SQL syntax error: Missing SQL command keyword."
	}

	return "SQL syntax appears to be correct."
}

// SuggestImprovements emits generic advice for common SQL anti-patterns.
func SuggestImprovements(sqlQuery string) string {
	var suggestions []string
	upper := strings.ToUpper(sqlQuery)

	if strings.Contains(upper, "SELECT *") {
		suggestions = append(suggestions, "Avoid using SELECT *; specify columns explicitly.")
	}
	if strings.Contains(upper, "JOIN") && !strings.Contains(upper, "ON") {
		suggestions = append(suggestions, "Ensure JOIN conditions are specified with ON.")
	}
	if strings.Contains(upper, "WHERE") && !strings.Contains(upper, "INDEX") {
		suggestions = append(suggestions, "Consider using indexes for columns in WHERE clause.")
	}

	if len(suggestions) == 0 {
		return "SQL query is well-optimized."
	}
	return "SQL Improvement Suggestions:\n" + strings.Join(suggestions, "\n")
}

package toolkit

import (
	"fmt"
	"strings"
)

// unsupportedStatement is returned for anything that is not a SELECT.
const unsupportedStatement = "Only basic SELECT queries are supported in this example."

// transformErrorPrefix prefixes every diagnostic produced by a malformed
// statement shape.
const transformErrorPrefix = "An error occurred while transforming SQL to Knex.js: "

// TransformSelect transliterates a basic single-table SELECT statement into
// an equivalent Knex.js query in CoffeeScript syntax.
//
// The transform is a single pass of string splitting, not a SQL parser.
// Conditions in the WHERE clause are consumed in strides of four tokens
// (column, operator, value, conjunction); the conjunction trailing one
// condition selects the chaining keyword of the next. Only queries shaped
// exactly like `select cols from table [where col op val [and|or ...]]`
// come out right; anything else is either silently wrong (joins, aliases,
// multi-word values) or reported as a diagnostic string. The function never
// returns an error: every failure path yields user-facing text.
func TransformSelect(sqlQuery string) string {
	out, err := transformSelect(sqlQuery)
	if err != nil {
		return transformErrorPrefix + err.Error()
	}
	return out
}

func transformSelect(sqlQuery string) (string, error) {
	q := strings.ToLower(strings.TrimSpace(sqlQuery))
	q = strings.TrimSpace(strings.TrimSuffix(q, ";"))

	if !strings.HasPrefix(q, "select") {
		return unsupportedStatement, nil
	}

	fromParts := strings.Split(q, "from")
	if len(fromParts) < 2 {
		return "", fmt.Errorf("statement has no from clause")
	}

	selectPart := strings.TrimSpace(strings.ReplaceAll(fromParts[0], "select", ""))
	tablePart := strings.Split(strings.TrimSpace(fromParts[1]), " ")[0]

	var whereClauses []string
	if strings.Contains(q, "where") {
		wherePart := strings.TrimSpace(strings.Split(q, "where")[1])
		conditions := strings.Fields(wherePart)

		currentOperator := "where"
		for i := 0; i < len(conditions); i += 4 {
			if i > 0 {
				switch conditions[i-1] {
				case "and":
					currentOperator = "andWhere"
				case "or":
					currentOperator = "orWhere"
				}
			}
			if i+3 > len(conditions) {
				return "", fmt.Errorf("incomplete condition %q in where clause", strings.Join(conditions[i:], " "))
			}
			column, operator, value := conditions[i], conditions[i+1], conditions[i+2]

			whereClauses = append(whereClauses,
				fmt.Sprintf(".%s '%s', '%s', %s", currentOperator, column, operator, formatValue(value)))
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "knex '%s'\n.select '%s'", tablePart, selectPart)
	for _, clause := range whereClauses {
		sb.WriteString("\n")
		sb.WriteString(clause)
	}
	sb.WriteString("\n")
	return sb.String(), nil
}

// formatValue renders a condition value: bare when numeric, verbatim when
// already single-quoted, otherwise wrapped in single quotes. Embedded quotes
// are not escaped.
func formatValue(value string) string {
	if isDigits(value) {
		return value
	}
	if strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'") {
		return value
	}
	return "'" + value + "'"
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

package repositories

import "strings"

const (
	flightSearchLimit  = 50
	catalogSearchLimit = 20
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE argument matching term anywhere. Wildcards in
// term are escaped so user input is matched literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(term)) + "%"
}

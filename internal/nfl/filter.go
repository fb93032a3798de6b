package nfl

import "strings"

// MentionsTeam reports whether text references the given team by
// abbreviation (standalone uppercase token), full name, or nickname.
func MentionsTeam(text, abbr string) bool {
	for _, token := range tokenize(text) {
		if token == abbr {
			return true
		}
	}

	lower := strings.ToLower(text)
	if seedTeam, ok := Teams[abbr]; ok && strings.Contains(lower, strings.ToLower(seedTeam.Name)) {
		return true
	}
	if nick, ok := Nicknames[abbr]; ok && strings.Contains(lower, strings.ToLower(nick)) {
		return true
	}
	return false
}

// MentionsThirdTeam reports whether text references any league team other
// than the two playing. Used to keep stray wire stories out of a matchup's
// inputs and narrative.
func MentionsThirdTeam(text, homeAbbr, awayAbbr string) bool {
	for abbr := range Teams {
		if abbr == homeAbbr || abbr == awayAbbr {
			continue
		}
		if MentionsTeam(text, abbr) {
			return true
		}
	}
	return false
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		isUpper := r >= 'A' && r <= 'Z'
		isLower := r >= 'a' && r <= 'z'
		isDigit := r >= '0' && r <= '9'
		return !isUpper && !isLower && !isDigit
	})
}

package toolinput

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

var literals = map[string]struct{}{"true": {}, "false": {}, "null": {}}

// NormalizeRelaxed rewrites relaxed JSON into strict JSON. Bare identifier keys
// are quoted, single-quoted strings become double-quoted and trailing commas
// before a closing bracket are dropped. String contents are never altered
// beyond quote escaping. The result must be valid JSON or an error is returned.
func NormalizeRelaxed(input string) (string, error) {
	source := []rune(input)
	var output strings.Builder
	output.Grow(len(input) + 8)

	for index := 0; index < len(source); {
		character := source[index]
		switch {
		case character == '"':
			end, err := copyDoubleQuoted(source, index, &output)
			if err != nil {
				return "", err
			}
			index = end
		case character == '\'':
			end, err := copySingleQuoted(source, index, &output)
			if err != nil {
				return "", err
			}
			index = end
		case character == ',':
			next := skipSpace(source, index+1)
			if next < len(source) && (source[next] == '}' || source[next] == ']') {
				index++
				continue
			}
			output.WriteRune(character)
			index++
		case isIdentifierStart(character):
			end := index + 1
			for end < len(source) && isIdentifierPart(source[end]) {
				end++
			}
			word := string(source[index:end])
			next := skipSpace(source, end)
			_, literal := literals[word]
			if !literal && next < len(source) && source[next] == ':' {
				output.WriteString(`"` + word + `"`)
			} else {
				output.WriteString(word)
			}
			index = end
		default:
			output.WriteRune(character)
			index++
		}
	}

	normalized := output.String()
	if !json.Valid([]byte(normalized)) {
		return "", fmt.Errorf("input is not valid JSON after normalization")
	}
	return normalized, nil
}

func copyDoubleQuoted(source []rune, start int, output *strings.Builder) (int, error) {
	output.WriteRune('"')
	for index := start + 1; index < len(source); index++ {
		character := source[index]
		output.WriteRune(character)
		switch character {
		case '\\':
			if index+1 < len(source) {
				index++
				output.WriteRune(source[index])
			}
		case '"':
			return index + 1, nil
		}
	}
	return 0, fmt.Errorf("unterminated string starting at offset %d", start)
}

func copySingleQuoted(source []rune, start int, output *strings.Builder) (int, error) {
	output.WriteRune('"')
	for index := start + 1; index < len(source); index++ {
		character := source[index]
		switch character {
		case '\\':
			if index+1 < len(source) && source[index+1] == '\'' {
				output.WriteRune('\'')
				index++
				continue
			}
			output.WriteRune(character)
			if index+1 < len(source) {
				index++
				output.WriteRune(source[index])
			}
		case '"':
			output.WriteString(`\"`)
		case '\'':
			output.WriteRune('"')
			return index + 1, nil
		default:
			output.WriteRune(character)
		}
	}
	return 0, fmt.Errorf("unterminated string starting at offset %d", start)
}

func skipSpace(source []rune, index int) int {
	for index < len(source) && unicode.IsSpace(source[index]) {
		index++
	}
	return index
}

func isIdentifierStart(character rune) bool {
	return character == '_' || character == '$' || unicode.IsLetter(character)
}

func isIdentifierPart(character rune) bool {
	return isIdentifierStart(character) || unicode.IsDigit(character)
}

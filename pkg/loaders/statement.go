package loaders

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Statement is one parsed directive of a scene file
type Statement struct {
	Type       string           // Directive name (Camera, Material, Shape, ...)
	Subtype    string           // Quoted implementation name (perspective, diffuse, sphere, ...)
	Parameters map[string]Param // Named, typed parameters
	Args       []string         // Bare numeric arguments (LookAt, Translate)
	Line       int              // Line on which the directive started
}

// Param is a typed parameter value list
type Param struct {
	Type   string   // float, integer, rgb, point3, string, ...
	Values []string // Raw values
}

// directives that may start a statement; anything else continues the previous one
var directives = []string{
	"Camera", "Film", "Sampler", "Integrator", "LookAt",
	"Material", "Shape", "LightSource",
	"Translate", "Rotate", "Scale", "Transform",
}

// bareArgDirectives take positional numbers instead of a subtype and parameter list
var bareArgDirectives = map[string]bool{
	"LookAt":    true,
	"Translate": true,
	"Rotate":    true,
	"Scale":     true,
	"Transform": true,
}

func isStatementStart(line string) bool {
	for _, directive := range directives {
		if line == directive || strings.HasPrefix(line, directive+" ") || strings.HasPrefix(line, directive+"\t") {
			return true
		}
	}
	return false
}

// tokenize splits a statement into tokens, keeping quoted strings and bracketed arrays whole
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes, inBrackets := false, false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, char := range text {
		switch {
		case char == '"' && !inBrackets:
			current.WriteRune(char)
			if inQuotes {
				flush()
			}
			inQuotes = !inQuotes
		case char == '[' && !inQuotes:
			flush()
			current.WriteRune(char)
			inBrackets = true
		case char == ']' && !inQuotes && inBrackets:
			current.WriteRune(char)
			flush()
			inBrackets = false
		case (char == ' ' || char == '\t') && !inQuotes && !inBrackets:
			flush()
		default:
			current.WriteRune(char)
		}
	}
	flush()

	return tokens
}

func isQuoted(token string) bool {
	return len(token) >= 2 && strings.HasPrefix(token, "\"") && strings.HasSuffix(token, "\"")
}

// parseStatement parses one complete directive
func parseStatement(text string, line int) (*Statement, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("line %d: empty statement", line)
	}

	stmt := &Statement{
		Type:       tokens[0],
		Parameters: make(map[string]Param),
		Line:       line,
	}
	tokens = tokens[1:]

	if bareArgDirectives[stmt.Type] {
		for _, token := range tokens {
			stmt.Args = append(stmt.Args, strings.Fields(strings.Trim(token, "[]"))...)
		}
		return stmt, nil
	}

	if len(tokens) == 0 || !isQuoted(tokens[0]) {
		return nil, fmt.Errorf("line %d: %s requires a quoted type", line, stmt.Type)
	}
	stmt.Subtype = strings.Trim(tokens[0], "\"")
	tokens = tokens[1:]

	for i := 0; i < len(tokens); i++ {
		if !isQuoted(tokens[i]) {
			return nil, fmt.Errorf("line %d: unexpected token %s", line, tokens[i])
		}

		decl := strings.Fields(strings.Trim(tokens[i], "\""))
		if len(decl) != 2 {
			return nil, fmt.Errorf("line %d: malformed parameter declaration %s", line, tokens[i])
		}
		if i+1 >= len(tokens) {
			return nil, fmt.Errorf("line %d: parameter %q has no value", line, decl[1])
		}

		i++
		value := tokens[i]
		var values []string
		if strings.HasPrefix(value, "[") {
			values = strings.Fields(strings.Trim(value, "[]"))
		} else {
			values = []string{value}
		}
		for j := range values {
			values[j] = strings.Trim(values[j], "\"")
		}

		stmt.Parameters[decl[1]] = Param{Type: decl[0], Values: values}
	}

	return stmt, nil
}

// parseFloats converts n raw values to floats
func parseFloats(values []string, n int) ([]float64, error) {
	if len(values) != n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(values))
	}
	result := make([]float64, n)
	for i, value := range values {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", value, err)
		}
		result[i] = f
	}
	return result, nil
}

func (stmt *Statement) param(name, typ string) (Param, bool, error) {
	param, exists := stmt.Parameters[name]
	if !exists {
		return Param{}, false, nil
	}
	if param.Type != typ {
		return Param{}, false, fmt.Errorf("line %d: parameter %q must be %s, got %s", stmt.Line, name, typ, param.Type)
	}
	return param, true, nil
}

// FloatParam returns a float parameter or def when absent
func (stmt *Statement) FloatParam(name string, def float64) (float64, error) {
	param, ok, err := stmt.param(name, "float")
	if err != nil || !ok {
		return def, err
	}
	values, err := parseFloats(param.Values, 1)
	if err != nil {
		return def, fmt.Errorf("line %d: parameter %q: %w", stmt.Line, name, err)
	}
	return values[0], nil
}

// IntParam returns an integer parameter or def when absent
func (stmt *Statement) IntParam(name string, def int) (int, error) {
	param, ok, err := stmt.param(name, "integer")
	if err != nil || !ok {
		return def, err
	}
	if len(param.Values) != 1 {
		return def, fmt.Errorf("line %d: parameter %q expects one value", stmt.Line, name)
	}
	value, err := strconv.Atoi(param.Values[0])
	if err != nil {
		return def, fmt.Errorf("line %d: parameter %q: %w", stmt.Line, name, err)
	}
	return value, nil
}

// Vec3Param returns a three-component parameter of the given type (rgb, point3, vector3)
func (stmt *Statement) Vec3Param(name, typ string, def core.Vec3) (core.Vec3, error) {
	param, ok, err := stmt.param(name, typ)
	if err != nil || !ok {
		return def, err
	}
	values, err := parseFloats(param.Values, 3)
	if err != nil {
		return def, fmt.Errorf("line %d: parameter %q: %w", stmt.Line, name, err)
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}

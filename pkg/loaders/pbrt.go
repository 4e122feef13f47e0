// Package loaders reads sphere scenes written in a subset of the PBRT scene format.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// SceneFile is the renderer-independent content of a parsed scene file.
// Optional settings are nil or zero when the file does not set them.
type SceneFile struct {
	Eye, LookAt, Up *core.Vec3 // From LookAt
	FOV             *float64   // Camera "perspective" "float fov"
	Width, Height   int        // Film resolution

	Spheres     []SphereShape
	PointLights []PointLightSource
	Ambient     *core.Vec3 // Sum of ambient/infinite lights
}

// SphereShape is a sphere with its accumulated translation applied
type SphereShape struct {
	Center core.Vec3
	Radius float64
	Color  *core.Vec3 // Diffuse reflectance, nil when no Material was active
}

// PointLightSource is a point light with its accumulated translation applied
type PointLightSource struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
}

// graphicsState is saved by AttributeBegin and restored by AttributeEnd
type graphicsState struct {
	material    *core.Vec3
	translation core.Vec3
}

// Parser accumulates multi-line statements and applies them to a SceneFile
type Parser struct {
	scene      *SceneFile
	state      graphicsState
	stateStack []graphicsState
	inWorld    bool
	worldEnded bool

	pending     []string
	pendingLine int
}

// NewParser creates a parser with an empty scene
func NewParser() *Parser {
	return &Parser{scene: &SceneFile{}}
}

// ParsePBRT parses scene content from an io.Reader
func ParsePBRT(reader io.Reader) (*SceneFile, error) {
	parser := NewParser()

	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if err := parser.ProcessLine(scanner.Text(), lineNumber); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return parser.Finish()
}

// LoadPBRT loads and parses a scene file
func LoadPBRT(filename string) (*SceneFile, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	scene, err := ParsePBRT(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return scene, nil
}

// ProcessLine feeds one line of input to the parser
func (p *Parser) ProcessLine(line string, lineNumber int) error {
	line = strings.TrimSpace(stripComment(line))
	if line == "" {
		return nil
	}

	switch line {
	case "WorldBegin", "WorldEnd", "AttributeBegin", "AttributeEnd":
		if err := p.flush(); err != nil {
			return err
		}
		return p.block(line, lineNumber)
	}

	if isStatementStart(line) {
		if err := p.flush(); err != nil {
			return err
		}
		p.pending = []string{line}
		p.pendingLine = lineNumber
		return nil
	}

	if len(p.pending) == 0 {
		return fmt.Errorf("line %d: unexpected continuation line: %s", lineNumber, line)
	}
	p.pending = append(p.pending, line)
	return nil
}

// stripComment removes a trailing # comment that is not inside a quoted string
func stripComment(line string) string {
	inQuotes := false
	for i, char := range line {
		switch char {
		case '"':
			inQuotes = !inQuotes
		case '#':
			if !inQuotes {
				return line[:i]
			}
		}
	}
	return line
}

// Finish completes parsing and returns the scene
func (p *Parser) Finish() (*SceneFile, error) {
	if err := p.flush(); err != nil {
		return nil, err
	}
	if len(p.stateStack) > 0 {
		return nil, fmt.Errorf("%d unclosed AttributeBegin block(s)", len(p.stateStack))
	}
	if p.inWorld {
		return nil, fmt.Errorf("missing WorldEnd")
	}
	return p.scene, nil
}

func (p *Parser) flush() error {
	if len(p.pending) == 0 {
		return nil
	}
	text := strings.Join(p.pending, " ")
	p.pending = nil

	stmt, err := parseStatement(text, p.pendingLine)
	if err != nil {
		return err
	}
	return p.apply(stmt)
}

func (p *Parser) block(directive string, lineNumber int) error {
	switch directive {
	case "WorldBegin":
		if p.inWorld || p.worldEnded {
			return fmt.Errorf("line %d: unexpected WorldBegin", lineNumber)
		}
		p.inWorld = true
	case "WorldEnd":
		if !p.inWorld {
			return fmt.Errorf("line %d: WorldEnd without WorldBegin", lineNumber)
		}
		if len(p.stateStack) > 0 {
			return fmt.Errorf("line %d: WorldEnd inside AttributeBegin block", lineNumber)
		}
		p.inWorld = false
		p.worldEnded = true
	case "AttributeBegin":
		if !p.inWorld {
			return fmt.Errorf("line %d: AttributeBegin outside WorldBegin/WorldEnd", lineNumber)
		}
		p.stateStack = append(p.stateStack, p.state)
	case "AttributeEnd":
		if len(p.stateStack) == 0 {
			return fmt.Errorf("line %d: AttributeEnd without AttributeBegin", lineNumber)
		}
		p.state = p.stateStack[len(p.stateStack)-1]
		p.stateStack = p.stateStack[:len(p.stateStack)-1]
	}
	return nil
}

// apply routes a statement to the options or world section
func (p *Parser) apply(stmt *Statement) error {
	if !p.inWorld {
		if p.worldEnded {
			return fmt.Errorf("line %d: %s after WorldEnd", stmt.Line, stmt.Type)
		}
		return p.applyOption(stmt)
	}
	return p.applyWorld(stmt)
}

func (p *Parser) applyOption(stmt *Statement) error {
	switch stmt.Type {
	case "LookAt":
		values, err := parseFloats(stmt.Args, 9)
		if err != nil {
			return fmt.Errorf("line %d: LookAt: %w", stmt.Line, err)
		}
		eye := core.NewVec3(values[0], values[1], values[2])
		at := core.NewVec3(values[3], values[4], values[5])
		up := core.NewVec3(values[6], values[7], values[8])
		p.scene.Eye, p.scene.LookAt, p.scene.Up = &eye, &at, &up
	case "Camera":
		if stmt.Subtype != "perspective" {
			return fmt.Errorf("line %d: unsupported camera %q", stmt.Line, stmt.Subtype)
		}
		if _, exists := stmt.Parameters["fov"]; exists {
			fov, err := stmt.FloatParam("fov", 0)
			if err != nil {
				return err
			}
			p.scene.FOV = &fov
		}
	case "Film":
		width, err := stmt.IntParam("xresolution", p.scene.Width)
		if err != nil {
			return err
		}
		height, err := stmt.IntParam("yresolution", p.scene.Height)
		if err != nil {
			return err
		}
		p.scene.Width, p.scene.Height = width, height
	case "Sampler", "Integrator":
		// Every pixel is shaded with one primary ray; sampling settings do not apply
	default:
		return fmt.Errorf("line %d: %s is not allowed before WorldBegin", stmt.Line, stmt.Type)
	}
	return nil
}

func (p *Parser) applyWorld(stmt *Statement) error {
	switch stmt.Type {
	case "Translate":
		values, err := parseFloats(stmt.Args, 3)
		if err != nil {
			return fmt.Errorf("line %d: Translate: %w", stmt.Line, err)
		}
		p.state.translation = p.state.translation.Add(core.NewVec3(values[0], values[1], values[2]))
	case "Material":
		return p.applyMaterial(stmt)
	case "Shape":
		return p.applyShape(stmt)
	case "LightSource":
		return p.applyLight(stmt)
	default:
		return fmt.Errorf("line %d: unsupported directive %s", stmt.Line, stmt.Type)
	}
	return nil
}

func (p *Parser) applyMaterial(stmt *Statement) error {
	if stmt.Subtype != "diffuse" {
		return fmt.Errorf("line %d: unsupported material %q", stmt.Line, stmt.Subtype)
	}
	reflectance, err := stmt.Vec3Param("reflectance", "rgb", core.NewVec3(0.5, 0.5, 0.5))
	if err != nil {
		return err
	}
	p.state.material = &reflectance
	return nil
}

func (p *Parser) applyShape(stmt *Statement) error {
	if stmt.Subtype != "sphere" {
		return fmt.Errorf("line %d: unsupported shape %q", stmt.Line, stmt.Subtype)
	}
	radius, err := stmt.FloatParam("radius", 1)
	if err != nil {
		return err
	}

	p.scene.Spheres = append(p.scene.Spheres, SphereShape{
		Center: p.state.translation,
		Radius: radius,
		Color:  p.state.material,
	})
	return nil
}

func (p *Parser) applyLight(stmt *Statement) error {
	scale, err := stmt.FloatParam("scale", 1)
	if err != nil {
		return err
	}

	switch stmt.Subtype {
	case "point":
		from, err := stmt.Vec3Param("from", "point3", core.Vec3{})
		if err != nil {
			return err
		}
		color, err := stmt.Vec3Param("I", "rgb", core.NewVec3(1, 1, 1))
		if err != nil {
			return err
		}
		p.scene.PointLights = append(p.scene.PointLights, PointLightSource{
			Position:  from.Add(p.state.translation),
			Color:     color,
			Intensity: scale,
		})
	case "ambient", "infinite":
		radiance, err := stmt.Vec3Param("L", "rgb", core.NewVec3(1, 1, 1))
		if err != nil {
			return err
		}
		ambient := radiance.Multiply(scale)
		if p.scene.Ambient != nil {
			ambient = ambient.Add(*p.scene.Ambient)
		}
		p.scene.Ambient = &ambient
	default:
		return fmt.Errorf("line %d: unsupported light %q", stmt.Line, stmt.Subtype)
	}
	return nil
}

// validateFilePath rejects empty, oversized or non-.pbrt paths
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.ToSlash(filepath.Clean(filename))
	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	if !strings.EqualFold(filepath.Ext(cleanPath), ".pbrt") {
		return fmt.Errorf("invalid file type: only .pbrt files are allowed")
	}

	return nil
}

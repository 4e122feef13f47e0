package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scene source types
const (
	SceneTypeBuiltin = "builtin"
	SceneTypeFile    = "pbrt"
)

// SceneInfo describes a scene that can be passed to LoadScene
type SceneInfo struct {
	ID          string // Value accepted by LoadSceneFrom for the listed dir
	Name        string // Human readable name
	Description string // Optional description
	Type        string // SceneTypeBuiltin or SceneTypeFile
}

// ListSceneFiles returns the scene files in dir, sorted by name.
// A missing directory yields an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	scenes := []SceneInfo{}
	if _, err := os.Stat(dir); err != nil {
		return scenes, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.pbrt"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	for _, path := range files {
		info, err := ParseSceneMetadata(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read metadata for %s: %w", path, err)
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// ParseSceneMetadata reads "# Scene:" and "# Description:" lines from the comment
// header of a scene file. The name falls back to the file name.
func ParseSceneMetadata(path string) (SceneInfo, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	info := SceneInfo{
		ID:   path,
		Name: titleCase(base),
		Type: SceneTypeFile,
	}

	file, err := os.Open(path)
	if err != nil {
		return info, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if value, ok := strings.CutPrefix(content, "Scene:"); ok {
			info.Name = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(content, "Description:"); ok {
			info.Description = strings.TrimSpace(value)
		}
	}

	return info, scanner.Err()
}

// ListScenes returns the built-in scenes followed by the scene files in dir
func ListScenes(dir string) ([]SceneInfo, error) {
	var scenes []SceneInfo
	for _, name := range BuiltinSceneNames() {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			Name:        titleCase(name),
			Description: builtinScenes[name].description,
			Type:        SceneTypeBuiltin,
		})
	}

	files, err := ListSceneFiles(dir)
	if err != nil {
		return nil, err
	}
	return append(scenes, files...), nil
}

// titleCase converts a file-style name to title case, e.g. "single-sphere" -> "Single Sphere"
func titleCase(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

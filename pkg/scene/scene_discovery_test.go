package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"single-sphere", "Single Sphere"},
		{"sphere_row", "Sphere Row"},
		{"UPPER-case", "Upper Case"},
		{"simple", "Simple"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if result := titleCase(tc.input); result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		file        string
		content     string
		name        string
		description string
	}{
		{
			file: "full.pbrt",
			content: `# Scene: Three Spheres
# Description: Colored spheres on a ground plane
LookAt 0 0 5  0 0 0  0 1 0
# Scene: ignored after the header`,
			name:        "Three Spheres",
			description: "Colored spheres on a ground plane",
		},
		{
			file:    "name-only.pbrt",
			content: "#Scene:Compact\nWorldBegin\nWorldEnd\n",
			name:    "Compact",
		},
		{
			file:    "no-metadata.pbrt",
			content: "WorldBegin\nWorldEnd\n",
			name:    "No Metadata",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatalf("Failed to write file: %v", err)
			}

			info, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if info.ID != path || info.Type != SceneTypeFile {
				t.Errorf("Unexpected ID/type: %+v", info)
			}
			if info.Name != tc.name {
				t.Errorf("Name = %q, want %q", info.Name, tc.name)
			}
			if info.Description != tc.description {
				t.Errorf("Description = %q, want %q", info.Description, tc.description)
			}
		})
	}

	if _, err := ParseSceneMetadata(filepath.Join(dir, "missing.pbrt")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.pbrt":    "# Scene: Beta\n",
		"a.pbrt":    "# Scene: Alpha\n",
		"notes.txt": "# Scene: Not a scene\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scene files, got %d", len(scenes))
	}
	if scenes[0].Name != "Alpha" || scenes[1].Name != "Beta" {
		t.Errorf("Expected scenes sorted by name, got %q, %q", scenes[0].Name, scenes[1].Name)
	}

	missing, err := ListSceneFiles(filepath.Join(dir, "does-not-exist"))
	if err != nil {
		t.Fatalf("Unexpected error for missing directory: %v", err)
	}
	if missing == nil || len(missing) != 0 {
		t.Errorf("Expected empty non-nil list, got %v", missing)
	}
}

func TestListScenes(t *testing.T) {
	scenes, err := ListScenes("../../scenes")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	builtins := BuiltinSceneNames()
	if len(scenes) < len(builtins) {
		t.Fatalf("Expected at least %d scenes, got %d", len(builtins), len(scenes))
	}

	for i, name := range builtins {
		info := scenes[i]
		if info.ID != name || info.Type != SceneTypeBuiltin || info.Description == "" {
			t.Errorf("Unexpected built-in entry %d: %+v", i, info)
		}
		if _, err := LoadScene(info.ID); err != nil {
			t.Errorf("Listed built-in %q does not load: %v", info.ID, err)
		}
	}

	fileCount := 0
	for _, info := range scenes[len(builtins):] {
		if info.Type != SceneTypeFile {
			t.Errorf("Expected file scene after built-ins, got %+v", info)
			continue
		}
		fileCount++
		if _, err := LoadScene(info.ID); err != nil {
			t.Errorf("Listed scene file %q does not load: %v", info.ID, err)
		}
	}
	if fileCount == 0 {
		t.Error("Expected scene files from the scenes directory")
	}
}

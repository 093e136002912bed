package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a scene name matches neither a built-in scene nor a scene file
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Name passed to Create
	DisplayName string // Human readable name
	Description string // Optional description
	Type        string // "builtin" or "file"
	FilePath    string // Path to the JSON file (file type only)
}

type builtinScene struct {
	info   SceneInfo
	create func() *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "Gray sphere on a large gray ground sphere",
			Type:        "builtin",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "two-spheres",
			DisplayName: "Two Spheres",
			Description: "Default scene with one sample and one bounce",
			Type:        "builtin",
		},
		create: NewTwoSpheresScene,
	},
	{
		info: SceneInfo{
			ID:          "spheregrid",
			DisplayName: "Sphere Grid",
			Description: "7x7 grid of rainbow-colored diffuse spheres",
			Type:        "builtin",
		},
		create: NewSphereGridScene,
	},
}

// Create returns a built-in scene by ID, or loads a JSON scene file if name ends in .json
func Create(name string) (*Scene, error) {
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return LoadSceneFile(name)
	}
	for _, builtin := range builtinScenes {
		if builtin.info.ID == name {
			return builtin.create(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// ListScenes returns the built-in scenes followed by the JSON scenes found in dir, sorted by display name.
// A missing dir is not an error.
func ListScenes(dir string) ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, builtin := range builtinScenes {
		scenes = append(scenes, builtin.info)
	}

	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return scenes, nil
		}
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var fileScenes []SceneInfo
	for _, path := range files {
		fileScenes = append(fileScenes, sceneFileInfo(path))
	}
	sort.Slice(fileScenes, func(i, j int) bool {
		return fileScenes[i].DisplayName < fileScenes[j].DisplayName
	})

	return append(scenes, fileScenes...), nil
}

// sceneFileInfo reads the name and description of a scene file, falling back to the file name
func sceneFileInfo(path string) SceneInfo {
	nameWithoutExt := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	info := SceneInfo{
		ID:          path,
		DisplayName: titleCase(nameWithoutExt),
		Type:        "file",
		FilePath:    path,
	}

	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	file, err := ParseSceneFile(f)
	if err != nil {
		return info
	}
	if file.Name != "" {
		info.DisplayName = file.Name
	}
	info.Description = file.Description
	return info
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}

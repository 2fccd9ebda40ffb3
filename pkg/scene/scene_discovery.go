package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const builtinGroup = "Built-in Scenes"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the scene file (json type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type builtinScene struct {
	info  SceneInfo
	build func(width, height int) (*Scene, error)
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Mirror and matte spheres on a square floor",
		},
		build: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "gloss",
			Name:        "Gloss",
			Description: "Mirror spheres of increasing gloss over a checkered floor",
		},
		build: NewGlossScene,
	},
	{
		info: SceneInfo{
			ID:          "textures",
			Name:        "Textures",
			Description: "UV, checkerboard and normal-mapped surfaces",
		},
		build: NewTextureTestScene,
	},
}

// ListBuiltinScenes returns the scenes that are constructed in code
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		info := b.info
		info.Group = builtinGroup
		info.Type = "builtin"
		scenes = append(scenes, info)
	}
	return scenes
}

// NewBuiltinScene constructs a builtin scene by id
func NewBuiltinScene(id string, width, height int) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.build(width, height)
		}
	}
	return nil, fmt.Errorf("unknown scene %q: %w", id, core.ErrInvalidArgument)
}

// Load returns a builtin scene by id or, when nameOrPath names a .json file,
// the scene it describes. Positive width and height override the scene's resolution.
func Load(nameOrPath string, width, height int) (*Scene, error) {
	if strings.HasSuffix(strings.ToLower(nameOrPath), ".json") {
		cfg, err := LoadConfig(nameOrPath)
		if err != nil {
			return nil, err
		}
		if width > 0 && height > 0 {
			cfg.Camera.Width = width
			cfg.Camera.Height = height
		}
		return cfg.Build()
	}

	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}
	return NewBuiltinScene(nameOrPath, width, height)
}

// ListJSONScenes scans dir for *.json scene files
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		// No scenes directory, nothing to list
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		scenes = append(scenes, parseSceneMetadata(filePath))
	}

	// Sort scenes by name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// parseSceneMetadata reads the descriptive fields of a scene file, falling
// back to values derived from the filename
func parseSceneMetadata(filePath string) SceneInfo {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       fmt.Sprintf("json:%s", nameWithoutExt),
		Name:     titleCase(nameWithoutExt),
		Group:    "Scene Files",
		Type:     "json",
		FilePath: filePath,
	}

	cfg, err := LoadConfig(filePath)
	if err != nil {
		return info
	}
	if cfg.Name != "" {
		info.Name = cfg.Name
	}
	if cfg.Group != "" {
		info.Group = cfg.Group
	}
	info.Description = cfg.Description
	return info
}

// ListAllScenes returns both built-in and file scenes, grouped by category
func ListAllScenes(dir string) (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := ListJSONScenes(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	groupMap := make(map[string][]SceneInfo)
	for _, s := range append(ListBuiltinScenes(), fileScenes...) {
		groupMap[s.Group] = append(groupMap[s.Group], s)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	response.Groups = append(response.Groups, SceneGroup{
		Name:   builtinGroup,
		Scenes: groupMap[builtinGroup],
	})
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "mirror-hall" -> "Mirror Hall"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}

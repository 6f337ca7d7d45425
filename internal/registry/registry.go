package registry

import (
	"sort"
	"sync"
)

// Param describes a single named argument a tool accepts.
type Param struct {
	Name        string
	Description string
	Default     string
	Required    bool
}

// Tool is a runnable unit exposed through the CLI listing and the MCP
// server. Run takes the tool's arguments by name and returns rendered
// output.
type Tool struct {
	Name        string
	Description string
	Params      []Param
	Run         func(args map[string]string) (string, error)
}

type ToolHierarchy struct {
	Platform string
	Category string
}

type RegistryEntry struct {
	Tool          Tool
	ToolHierarchy ToolHierarchy
}

type ToolRegistry struct {
	mu        sync.RWMutex
	tools     map[string]RegistryEntry       // name -> tool mapping
	hierarchy map[string]map[string][]string // platform -> category -> []name
}

var Registry = &ToolRegistry{
	tools:     make(map[string]RegistryEntry),
	hierarchy: make(map[string]map[string][]string),
}

func Register(platform, category string, tool Tool) {
	Registry.mu.Lock()
	defer Registry.mu.Unlock()

	Registry.tools[tool.Name] = RegistryEntry{
		Tool: tool,
		ToolHierarchy: ToolHierarchy{
			Platform: platform,
			Category: category,
		},
	}

	if _, exists := Registry.hierarchy[platform]; !exists {
		Registry.hierarchy[platform] = make(map[string][]string)
	}

	Registry.hierarchy[platform][category] = append(Registry.hierarchy[platform][category], tool.Name)
}

// GetTools retrieves all tools for a given platform
func GetTools(platform string) []Tool {
	Registry.mu.RLock()
	defer Registry.mu.RUnlock()

	var tools []Tool

	if categoryMap, exists := Registry.hierarchy[platform]; exists {
		for _, names := range categoryMap {
			for _, name := range names {
				tools = append(tools, Registry.tools[name].Tool)
			}
		}
	}

	return tools
}

// GetTool gets a specific tool by name
func GetTool(name string) (Tool, bool) {
	Registry.mu.RLock()
	defer Registry.mu.RUnlock()

	entry, exists := Registry.tools[name]
	if !exists {
		return Tool{}, false
	}

	return entry.Tool, true
}

// GetHierarchy exposes the platform/category tree for CLI generation
func GetHierarchy() map[string]map[string][]string {
	Registry.mu.RLock()
	defer Registry.mu.RUnlock()

	// Return a copy to prevent modification of the original
	result := make(map[string]map[string][]string)
	for platform, categories := range Registry.hierarchy {
		result[platform] = make(map[string][]string)
		for category, tools := range categories {
			result[platform][category] = append([]string{}, tools...)
		}
	}

	return result
}

// GetRegistryEntry gets the full entry for a tool
func GetRegistryEntry(name string) (RegistryEntry, bool) {
	Registry.mu.RLock()
	defer Registry.mu.RUnlock()

	entry, exists := Registry.tools[name]
	return entry, exists
}

// Names returns all registered tool names in sorted order
func Names() []string {
	Registry.mu.RLock()
	defer Registry.mu.RUnlock()

	names := make([]string, 0, len(Registry.tools))
	for name := range Registry.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

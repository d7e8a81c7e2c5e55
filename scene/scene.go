package scene

import (
	"fmt"
	"sort"

	"github.com/Boothwhack/ray-tracing/tracer"
)

// Scene pairs a world object tree with the camera it should be viewed
// through. The tracer treats both as read-only snapshots during a render
// pass.
type Scene struct {
	Camera Camera
	World  tracer.Object
}

// PrefabInfo describes one entry of the built-in scene registry.
type PrefabInfo struct {
	Name        string
	Description string
}

type prefabEntry struct {
	description string
	build       func() (*Scene, error)
}

var prefabs = map[string]prefabEntry{
	"cover": {
		description: "field of random small spheres around three large feature spheres",
		build:       Cover,
	},
	"trio": {
		description: "glass, diffuse and metal sphere resting on a ground sphere",
		build:       Trio,
	},
}

// Prefab builds one of the built-in scenes by name.
func Prefab(name string) (*Scene, error) {
	entry, ok := prefabs[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown prefab scene %q", name)
	}
	return entry.build()
}

// Prefabs lists the built-in scenes in name order.
func Prefabs() []PrefabInfo {
	list := make([]PrefabInfo, 0, len(prefabs))
	for name, entry := range prefabs {
		list = append(list, PrefabInfo{Name: name, Description: entry.description})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

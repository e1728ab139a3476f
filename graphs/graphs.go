// Package graphs embeds the render graph scripts that ship with passgraph.
package graphs

import (
	"embed"
	"io/fs"
	"path"
	"sort"
)

//go:embed data/*.hcl
var data embed.FS

// Script is one embedded graph script.
type Script struct {
	Filename string
	Source   []byte
}

// Scripts returns every embedded script, sorted by file name.
func Scripts() ([]Script, error) {
	entries, err := fs.ReadDir(data, "data")
	if err != nil {
		return nil, err
	}
	scripts := make([]Script, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := path.Join("data", e.Name())
		src, err := data.ReadFile(name)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, Script{Filename: name, Source: src})
	}
	sort.Slice(scripts, func(i, j int) bool { return scripts[i].Filename < scripts[j].Filename })
	return scripts, nil
}

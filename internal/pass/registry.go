package pass

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/specialistvlad/passgraph/internal/ctxlog"
)

var (
	// ErrUnknownLibrary is returned when loading a library nobody registered.
	ErrUnknownLibrary = errors.New("unknown pass library")
	// ErrUnknownPassType is returned for a pass type no library provides.
	ErrUnknownPassType = errors.New("unknown pass type")
	// ErrPassTypeNotLoaded is returned when the library providing a pass
	// type has not been loaded yet.
	ErrPassTypeNotLoaded = errors.New("pass type library not loaded")
	// ErrUnknownOption is returned for an option the pass type does not declare.
	ErrUnknownOption = errors.New("unknown pass option")
	// ErrInvalidOption is returned when an option value does not fit its spec.
	ErrInvalidOption = errors.New("invalid pass option")
)

// Module is the interface every compiled-in pass library implements to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds every registered pass library and enum for a single
// application instance, and tracks which libraries have been loaded.
type Registry struct {
	mu        sync.RWMutex
	libraries map[string]*Library
	// owners maps a pass type name to the library that registered it first.
	owners map[string]string
	enums  map[string]*Enum
	loaded map[string]struct{}
	// conflicts collects registration problems reported by Validate.
	conflicts []string
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		libraries: make(map[string]*Library),
		owners:    make(map[string]string),
		enums:     make(map[string]*Enum),
		loaded:    make(map[string]struct{}),
	}
}

// NewWithModules creates a registry and lets every module register itself.
func NewWithModules(modules ...Module) *Registry {
	r := New()
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// RegisterLibrary makes a library available for loading. Registering a
// library name twice replaces the earlier definition.
func (r *Registry) RegisterLibrary(lib *Library) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.libraries[lib.Name]; exists {
		r.conflicts = append(r.conflicts, fmt.Sprintf("library %q registered more than once", lib.Name))
	}
	r.libraries[lib.Name] = lib
	for _, t := range lib.Types {
		if owner, taken := r.owners[t.Name]; taken && owner != lib.Name {
			r.conflicts = append(r.conflicts, fmt.Sprintf("pass type %q is provided by both %q and %q", t.Name, owner, lib.Name))
			continue
		}
		r.owners[t.Name] = lib.Name
	}
}

// RegisterEnum makes an enum available to option values and scripts.
// Registering the same enum twice is harmless; a different enum under an
// existing name is reported by Validate.
func (r *Registry) RegisterEnum(e *Enum) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.enums[e.Name]; exists && existing != e {
		r.conflicts = append(r.conflicts, fmt.Sprintf("enum %q registered more than once", e.Name))
	}
	r.enums[e.Name] = e
}

// Enum looks up a registered enum.
func (r *Registry) Enum(name string) (*Enum, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.enums[name]
	return e, ok
}

// Enums returns every registered enum, sorted by name.
func (r *Registry) Enums() []*Enum {
	r.mu.RLock()
	defer r.mu.RUnlock()

	enums := make([]*Enum, 0, len(r.enums))
	for _, e := range r.enums {
		enums = append(enums, e)
	}
	sort.Slice(enums, func(i, j int) bool { return enums[i].Name < enums[j].Name })
	return enums
}

// Libraries returns the names of all registered libraries, sorted.
func (r *Registry) Libraries() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.libraries))
	for name := range r.libraries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LibraryName reduces a plugin file name such as "GBuffer.dll" or
// "libGBuffer.so" to the library name "GBuffer".
func LibraryName(file string) string {
	name := filepath.Base(strings.ReplaceAll(file, `\`, "/"))
	switch ext := filepath.Ext(name); strings.ToLower(ext) {
	case ".dll":
		name = strings.TrimSuffix(name, ext)
	case ".so", ".dylib":
		name = strings.TrimPrefix(strings.TrimSuffix(name, ext), "lib")
	}
	return name
}

// LoadPlugin loads a library so its pass types can be created. Loading an
// already loaded library is a no-op.
func (r *Registry) LoadPlugin(ctx context.Context, file string) error {
	name := LibraryName(file)
	logger := ctxlog.FromContext(ctx).With("library", name)

	r.mu.Lock()
	defer r.mu.Unlock()

	lib, ok := r.libraries[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLibrary, file)
	}
	if _, done := r.loaded[name]; done {
		logger.Debug("Pass library already loaded.")
		return nil
	}
	r.loaded[name] = struct{}{}
	logger.Debug("Pass library loaded.", "pass_types", len(lib.Types))
	return nil
}

// Loaded reports whether the named library has been loaded.
func (r *Registry) Loaded(file string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.loaded[LibraryName(file)]
	return ok
}

// PassType returns the reflection data for a pass type, regardless of
// whether its library is loaded.
func (r *Registry) PassType(name string) (*Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, _, err := r.lookup(name)
	return t, err
}

// lookup finds a pass type and its library. Callers hold the lock.
func (r *Registry) lookup(name string) (*Type, string, error) {
	owner, ok := r.owners[name]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownPassType, name)
	}
	for _, t := range r.libraries[owner].Types {
		if t.Name == name {
			return t, owner, nil
		}
	}
	return nil, "", fmt.Errorf("%w: %q", ErrUnknownPassType, name)
}

// LibraryOf returns the name of the library providing a pass type.
func (r *Registry) LibraryOf(typeName string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	owner, ok := r.owners[typeName]
	return owner, ok
}

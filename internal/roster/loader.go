package roster

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/roster.yaml
var defaultRosterYAML []byte

// catalogFile is the on-disk layout of a roster file.
type catalogFile struct {
	Weapons  []*Weapon  `yaml:"weapons"`
	Fighters []*Fighter `yaml:"fighters"`
}

type catalog struct {
	fighters map[string]*Fighter
	weapons  map[string]*Weapon
	order    []string // fighter ids in file order
}

var (
	mu         sync.Mutex
	customPath string
	loaded     *catalog
	loadErr    error
)

// SetConfigPath overrides the roster file location (from the --roster flag).
// Must be called before the first lookup; it resets any cached catalog.
func SetConfigPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	customPath = path
	loaded = nil
	loadErr = nil
}

// DefaultYAML returns the embedded default catalog, for exporting a template
// the user can edit.
func DefaultYAML() []byte {
	return defaultRosterYAML
}

// get loads the catalog on first use.
// Search order: custom path -> ~/.duel/configs/roster.yaml -> ./configs/roster.yaml -> embedded default
func get() (*catalog, error) {
	mu.Lock()
	defer mu.Unlock()

	if loaded != nil || loadErr != nil {
		return loaded, loadErr
	}

	var data []byte

	if customPath != "" {
		b, err := os.ReadFile(customPath)
		if err != nil {
			loadErr = fmt.Errorf("roster: failed to read %s: %w", customPath, err)
			return nil, loadErr
		}
		data = b
	} else if b, ok := readUserRoster(); ok {
		data = b
	} else if b, err := os.ReadFile(filepath.Join("configs", "roster.yaml")); err == nil {
		data = b
	} else {
		data = defaultRosterYAML
	}

	c, err := parse(data)
	if err != nil {
		loaded, loadErr = nil, err
		return nil, err
	}
	loaded = c
	return loaded, nil
}

func readUserRoster() ([]byte, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, false
	}
	b, err := os.ReadFile(filepath.Join(home, ".duel", "configs", "roster.yaml"))
	if err != nil {
		return nil, false
	}
	return b, true
}

func parse(data []byte) (*catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("roster: failed to parse catalog: %w", err)
	}

	c := &catalog{
		fighters: make(map[string]*Fighter, len(file.Fighters)),
		weapons:  make(map[string]*Weapon, len(file.Weapons)),
	}

	for _, w := range file.Weapons {
		if w.ID == "" {
			return nil, fmt.Errorf("roster: weapon with empty id")
		}
		if _, dup := c.weapons[w.ID]; dup {
			return nil, fmt.Errorf("roster: duplicate weapon %q", w.ID)
		}
		if w.AttackSpeed <= 0 {
			return nil, fmt.Errorf("roster: weapon %q has non-positive attack_speed", w.ID)
		}
		c.weapons[w.ID] = w
	}

	for _, f := range file.Fighters {
		if f.ID == "" {
			return nil, fmt.Errorf("roster: fighter with empty id")
		}
		if _, dup := c.fighters[f.ID]; dup {
			return nil, fmt.Errorf("roster: duplicate fighter %q", f.ID)
		}
		if _, ok := c.weapons[f.WeaponID]; !ok {
			return nil, fmt.Errorf("roster: fighter %q references unknown weapon %q", f.ID, f.WeaponID)
		}
		if f.MaxHealth <= 0 || f.MaxStamina <= 0 {
			return nil, fmt.Errorf("roster: fighter %q has non-positive health or stamina", f.ID)
		}
		c.fighters[f.ID] = f
		c.order = append(c.order, f.ID)
	}

	if len(c.fighters) == 0 {
		return nil, fmt.Errorf("roster: catalog contains no fighters")
	}

	return c, nil
}

// Lookup returns the fighter with the given id.
func Lookup(id string) (*Fighter, error) {
	c, err := get()
	if err != nil {
		return nil, err
	}
	f, ok := c.fighters[id]
	if !ok {
		return nil, fmt.Errorf("roster: unknown fighter %q (valid: %s)", id, strings.Join(c.order, ", "))
	}
	return f, nil
}

// LookupWeapon returns the weapon with the given id.
func LookupWeapon(id string) (*Weapon, error) {
	c, err := get()
	if err != nil {
		return nil, err
	}
	w, ok := c.weapons[id]
	if !ok {
		ids := make([]string, 0, len(c.weapons))
		for wid := range c.weapons {
			ids = append(ids, wid)
		}
		sort.Strings(ids)
		return nil, fmt.Errorf("roster: unknown weapon %q (valid: %s)", id, strings.Join(ids, ", "))
	}
	return w, nil
}

// Exists checks if a fighter with the given id is in the catalog.
func Exists(id string) bool {
	c, err := get()
	if err != nil {
		return false
	}
	_, ok := c.fighters[id]
	return ok
}

// List returns summary rows for all fighters in catalog order.
func List() ([]Info, error) {
	c, err := get()
	if err != nil {
		return nil, err
	}
	result := make([]Info, 0, len(c.order))
	for _, id := range c.order {
		f := c.fighters[id]
		w := c.weapons[f.WeaponID]
		result = append(result, Info{
			ID:     f.ID,
			Name:   f.Name,
			Style:  f.Style,
			Weapon: w.Name,
		})
	}
	return result, nil
}

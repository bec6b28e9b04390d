package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oxyfarm/aercomp/internal/engine"
)

// Preset is a named, self-contained comparison scenario. Presets replace
// what used to be ad-hoc example data scattered through analysis notebooks:
// they are passed into the engine explicitly, never consulted implicitly.
type Preset struct {
	Name        string                   `yaml:"name"`
	Description string                   `yaml:"description"`
	Request     engine.ComparisonRequest `yaml:"request"`
}

// num builds an optional request number.
func num(x float64) *engine.Number {
	n := engine.Number(x)
	return &n
}

// BuiltinPresets returns the presets compiled into the binary, keyed by
// name. "demo-farm" is the published two-aerator walkthrough scenario;
// "large-farm" is the full-demand default scenario.
func BuiltinPresets() map[string]Preset {
	return map[string]Preset{
		"demo-farm": {
			Name:        "demo-farm",
			Description: "1000 ha demo farm comparing a paddlewheel against a high-SOTR alternative",
			Request: engine.ComparisonRequest{
				Farm: &engine.FarmInput{
					TOD:           num(5.47),
					FarmAreaHa:    num(1000),
					ShrimpPrice:   num(5.0),
					CultureDays:   num(120),
					ShrimpDensity: num(0.3333333),
					PondDepthM:    num(1.0),
				},
				Financial: &engine.FinancialInput{
					EnergyCost:    num(0.05),
					HoursPerNight: num(8),
					DiscountRate:  num(0.1),
					InflationRate: num(0.025),
					Horizon:       num(10),
					SafetyMargin:  num(0),
					Temperature:   num(31.5),
				},
				Aerators: []engine.AeratorInput{
					{Name: "Aerator 1", SOTR: num(1.9), PowerHP: num(3), Cost: num(700), Durability: num(2.0), Maintenance: num(65)},
					{Name: "Aerator 2", SOTR: num(3.5), PowerHP: num(3), Cost: num(900), Durability: num(5.0), Maintenance: num(50)},
				},
			},
		},
		"large-farm": {
			Name:        "large-farm",
			Description: "Default 1000 ha farm at full oxygen demand with three aerator classes",
			Request: engine.ComparisonRequest{
				Aerators: []engine.AeratorInput{
					{Name: "Baseline Aerator", SOTR: num(1.0), PowerHP: num(3), Cost: num(500), Durability: num(2.0), Maintenance: num(65)},
					{Name: "Mid-efficiency Aerator", SOTR: num(1.5), PowerHP: num(3), Cost: num(600), Durability: num(3.5), Maintenance: num(55)},
					{Name: "High-efficiency Aerator", SOTR: num(3.0), PowerHP: num(3), Cost: num(800), Durability: num(6.0), Maintenance: num(45)},
				},
			},
		},
	}
}

// LoadPresetDir reads every *.yaml preset in dir, keyed by preset name
// (falling back to the file stem when the document has no name).
func LoadPresetDir(dir string) (map[string]Preset, error) {
	presets := make(map[string]Preset)
	if dir == "" {
		return presets, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading preset dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading preset %s: %w", path, err)
		}
		var p Preset
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing preset %s: %w", path, err)
		}
		if p.Name == "" {
			p.Name = strings.TrimSuffix(entry.Name(), ".yaml")
		}
		presets[p.Name] = p
	}
	return presets, nil
}

// ResolvePreset finds a preset by name: directory presets shadow built-ins.
func ResolvePreset(name, dir string) (Preset, error) {
	fromDir, err := LoadPresetDir(dir)
	if err != nil {
		return Preset{}, err
	}
	if p, ok := fromDir[name]; ok {
		return p, nil
	}
	if p, ok := BuiltinPresets()[name]; ok {
		return p, nil
	}
	return Preset{}, fmt.Errorf("unknown preset %q", name)
}

// PresetNames lists all available preset names, sorted, directory presets
// included.
func PresetNames(dir string) ([]string, error) {
	seen := make(map[string]struct{})
	for name := range BuiltinPresets() {
		seen[name] = struct{}{}
	}
	fromDir, err := LoadPresetDir(dir)
	if err != nil {
		return nil, err
	}
	for name := range fromDir {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

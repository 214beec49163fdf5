// Package settings persists player customization: display names and the
// body/head color pair each player picked from the shared presets.
// Match state is never persisted; this file is the only thing on disk.
package settings

import (
	"encoding/json"
	"os"
)

// maxNameLength bounds player display names.
const maxNameLength = 16

// Color is an RGB triple.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Preset is a body/head color pair both players can choose from.
type Preset struct {
	Body Color
	Head Color
}

// Presets are the shared color pairs, selectable by either player.
var Presets = []Preset{
	{Body: Color{40, 220, 120}, Head: Color{20, 255, 160}},  // bright green
	{Body: Color{80, 150, 255}, Head: Color{120, 200, 255}}, // blue
	{Body: Color{255, 120, 80}, Head: Color{255, 180, 140}}, // orange
	{Body: Color{200, 80, 200}, Head: Color{240, 160, 240}}, // purple
	{Body: Color{255, 220, 60}, Head: Color{255, 255, 140}}, // yellow
	{Body: Color{80, 255, 200}, Head: Color{160, 255, 230}}, // aqua
	{Body: Color{255, 100, 190}, Head: Color{255, 170, 220}}, // pink
	{Body: Color{160, 120, 255}, Head: Color{210, 180, 255}}, // violet
	{Body: Color{120, 220, 60}, Head: Color{190, 255, 120}},  // lime
	{Body: Color{255, 180, 60}, Head: Color{255, 220, 120}},  // gold
}

// Player holds one player's customization.
type Player struct {
	Name string `json:"name"`
	Body Color  `json:"body"`
	Head Color  `json:"head"`
}

// Settings holds both players' customization.
type Settings struct {
	P1 Player `json:"p1"`
	P2 Player `json:"p2"`
}

// Default returns the out-of-the-box customization.
func Default() Settings {
	return Settings{
		P1: Player{Name: "P1", Body: Presets[0].Body, Head: Presets[0].Head},
		P2: Player{Name: "P2", Body: Presets[1].Body, Head: Presets[1].Head},
	}
}

// Load reads settings from path. A missing or unreadable file yields the
// defaults; broken customization must never stop the game from starting.
func Load(path string) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Default()
	}
	s.normalize()
	return s
}

// Save writes settings to path.
func Save(path string, s Settings) error {
	s.normalize()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// normalize fills empty names and clamps over-long ones.
func (s *Settings) normalize() {
	s.P1.normalize("P1")
	s.P2.normalize("P2")
}

func (p *Player) normalize(fallbackName string) {
	if p.Name == "" {
		p.Name = fallbackName
	}
	if len(p.Name) > maxNameLength {
		p.Name = p.Name[:maxNameLength]
	}
}

package twd

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/guicampos/tale/internal/world"
)

// FormatName is the value the format key of every TWD file must have.
const FormatName = "TALE"

type topLevelWorldData struct {
	Format    string        `toml:"format"`
	Type      string        `toml:"type"`
	World     worldDef      `toml:"world"`
	Locations []locationDef `toml:"locations"`
	NPCs      []npcDef      `toml:"npcs"`
}

type worldDef struct {
	Start string `toml:"start"`
}

type locationDef struct {
	Name        string    `toml:"name"`
	Description string    `toml:"description"`
	Exits       []exitDef `toml:"exits"`
	Items       []itemDef `toml:"items"`
}

type exitDef struct {
	Direction   string   `toml:"direction"`
	To          string   `toml:"to"`
	Description string   `toml:"description"`
	Aliases     []string `toml:"aliases"`
}

type itemDef struct {
	Name        string   `toml:"name"`
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Aliases     []string `toml:"aliases"`
}

type npcDef struct {
	Name        string   `toml:"name"`
	Title       string   `toml:"title"`
	Location    string   `toml:"location"`
	Gender      string   `toml:"gender"`
	Aliases     []string `toml:"aliases"`
	Aggressive  bool     `toml:"aggressive"`
	DefaultVerb string   `toml:"default_verb"`
}

func unmarshalWorldData(data []byte) (topLevelWorldData, error) {
	var tlwd topLevelWorldData
	if err := toml.Unmarshal(data, &tlwd); err != nil {
		return tlwd, err
	}
	if strings.ToUpper(tlwd.Format) != FormatName {
		return tlwd, fmt.Errorf("in header: format: must be %q, not %q", FormatName, tlwd.Format)
	}
	if strings.ToUpper(tlwd.Type) != "WORLD" {
		return tlwd, fmt.Errorf("in header: type: must be \"WORLD\", not %q", tlwd.Type)
	}
	return tlwd, nil
}

func parseWorldData(tlwd topLevelWorldData) (WorldData, error) {
	wd := WorldData{
		Locations: make(map[string]*world.Location),
	}

	// first pass: create the locations so exits have something to point to
	for _, l := range tlwd.Locations {
		if l.Name == "" {
			return wd, fmt.Errorf("locations: all locations must have a name")
		}
		if _, ok := wd.Locations[l.Name]; ok {
			return wd, fmt.Errorf("locations[%q]: name used more than once", l.Name)
		}
		wd.Locations[l.Name] = world.NewLocation(l.Name, l.Description)
	}

	if tlwd.World.Start == "" {
		return wd, fmt.Errorf("world: start: must not be empty")
	}
	if _, ok := wd.Locations[tlwd.World.Start]; !ok {
		return wd, fmt.Errorf("world: start: no location named %q exists", tlwd.World.Start)
	}
	wd.Start = tlwd.World.Start

	// second pass: fill in exits and items
	for _, l := range tlwd.Locations {
		loc := wd.Locations[l.Name]
		for _, e := range l.Exits {
			if e.Direction == "" {
				return wd, fmt.Errorf("locations[%q]: exits: all exits must have a direction", l.Name)
			}
			dest, ok := wd.Locations[e.To]
			if !ok {
				return wd, fmt.Errorf("locations[%q]: exits[%q]: no location named %q exists", l.Name, e.Direction, e.To)
			}
			loc.AddExit(world.NewExit(e.Direction, dest, e.Description, e.Aliases...))
		}
		for _, it := range l.Items {
			if it.Name == "" {
				return wd, fmt.Errorf("locations[%q]: items: all items must have a name", l.Name)
			}
			loc.AddItem(world.NewItem(it.Name, it.Title, it.Description, it.Aliases...))
		}
	}

	// third pass: create the NPCs and place them
	seenNPCs := make(map[string]bool)
	for _, n := range tlwd.NPCs {
		if n.Name == "" {
			return wd, fmt.Errorf("npcs: all npcs must have a name")
		}
		if seenNPCs[n.Name] {
			return wd, fmt.Errorf("npcs[%q]: name used more than once", n.Name)
		}
		seenNPCs[n.Name] = true
		switch n.Gender {
		case "", "m", "f", "n":
		default:
			return wd, fmt.Errorf("npcs[%q]: gender: must be one of \"m\", \"f\" or \"n\", not %q", n.Name, n.Gender)
		}
		loc, ok := wd.Locations[n.Location]
		if !ok {
			return wd, fmt.Errorf("npcs[%q]: location: no location named %q exists", n.Name, n.Location)
		}

		npc := world.NewLiving(n.Name, n.Title, world.PronounsForGender(n.Gender), n.Aliases...)
		npc.Aggressive = n.Aggressive
		if n.DefaultVerb != "" {
			npc.SetDefaultVerb(n.DefaultVerb)
		}
		npc.MoveTo(loc)
	}

	return wd, nil
}

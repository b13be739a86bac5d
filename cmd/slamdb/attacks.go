package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wgrayson/slamdb/internal/bin"
	"github.com/wgrayson/slamdb/internal/classes"
	"github.com/wgrayson/slamdb/internal/console"
)

// attackInfo is the editable JSON view of one Game::AttackMoveType. Offsets
// locate the object (and its hitboxes) inside the character's player.db.bin
// and must not be edited.
type attackInfo struct {
	Offset     int            `json:"offset"`
	Name       string         `json:"name"`
	Damage1    float32        `json:"damage1"`
	Damage2    float32        `json:"damage2"`
	Damage3    float32        `json:"damage3"`
	Stun       float32        `json:"stun"`
	Knockback  float32        `json:"knockback"`
	Disabled   bool           `json:"disabled"`
	KnocksDown bool           `json:"knocks_down"`
	HitsOTG    bool           `json:"hits_otg"`
	Intangible bool           `json:"intangible"`
	Hitboxes   []attackHitbox `json:"hitboxes"`
}

// attackHitbox is the JSON view of one Game::AttackMoveRegion.
type attackHitbox struct {
	Offset int     `json:"offset"`
	Delay  float32 `json:"delay"`
	Width  float32 `json:"width"`
	Radius float32 `json:"radius"`
}

var attacksJSON string

var attacksCmd = &cobra.Command{
	Use:   "attacks",
	Short: "Dump or patch every character's attack data",
}

var attacksDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write all attack data to a JSON file",
	Long: `Dump collects every Game::AttackMoveType from each character's player.db.bin
and writes them to a JSON file keyed by character name. Edit the file and
apply it with 'attacks patch'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openArchive()
		if err != nil {
			return err
		}

		attacks := make(map[string][]attackInfo)
		for _, path := range store.Paths() {
			character, ok := playerCharacter(path)
			if !ok {
				continue
			}
			buf, err := store.Decompressed(path)
			if err != nil {
				return err
			}
			infos, err := readAttacks(buf, store.Console())
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			attacks[character] = infos
		}

		out, err := json.MarshalIndent(attacks, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(attacksJSON, out, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", attacksJSON, err)
		}
		slog.Info("Dumped attacks", "characters", len(attacks), "json", attacksJSON)
		return nil
	},
}

var (
	attacksOutDat string
	attacksOutDir string
)

var attacksPatchCmd = &cobra.Command{
	Use:   "patch",
	Short: "Apply attack data from a JSON file and rebuild the archive",
	Long: `Patch reads a JSON file produced by 'attacks dump', writes the edited values
back into each character's player.db.bin, and emits a rebuilt
MASTER.DAT/MASTER.DIR pair containing the changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(attacksJSON)
		if err != nil {
			return fmt.Errorf("reading %s: %w", attacksJSON, err)
		}
		var attacks map[string][]attackInfo
		if err := json.Unmarshal(raw, &attacks); err != nil {
			return fmt.Errorf("parsing %s: %w", attacksJSON, err)
		}

		store, err := openArchive()
		if err != nil {
			return err
		}

		var patched int
		for _, path := range store.Paths() {
			character, ok := playerCharacter(path)
			if !ok {
				continue
			}
			infos, ok := attacks[character]
			if !ok {
				continue
			}

			buf, err := store.Decompressed(path)
			if err != nil {
				return err
			}
			for _, info := range infos {
				if err := writeAttack(buf, &info, store.Console()); err != nil {
					return fmt.Errorf("%s %q: %w", path, info.Name, err)
				}
				patched++
			}
			store.Update(path, buf)
		}

		if err := writeArchive(store, attacksOutDat, attacksOutDir); err != nil {
			return err
		}
		slog.Info("Patched attacks", "attacks", patched,
			"dat", attacksOutDat, "dir", attacksOutDir)
		return nil
	},
}

// playerCharacter extracts the character name from a player.db.bin archive
// path, e.g. `data\players\shrek\player.db.bin` yields "shrek".
func playerCharacter(path string) (string, bool) {
	parts := strings.Split(path, "\\")
	if len(parts) < 2 || parts[len(parts)-1] != "player.db.bin" {
		return "", false
	}
	return parts[len(parts)-2], true
}

// readAttacks decodes every Game::AttackMoveType in a player.db.bin buffer.
func readAttacks(buf []byte, c console.Console) ([]attackInfo, error) {
	f, err := bin.ParseFile(buf, c)
	if err != nil {
		return nil, err
	}
	class, err := classes.ByName("Game::AttackMoveType")
	if err != nil {
		return nil, err
	}

	var infos []attackInfo
	for _, record := range f.Objects {
		if record.Hash != class.Hash {
			continue
		}
		obj, err := f.Object(record.Offset, class)
		if err != nil {
			return nil, err
		}

		name, err := f.StringAt(uint32(obj.Fields["name"].(uint64)))
		if err != nil {
			return nil, err
		}
		hitboxes, err := readHitboxes(f, obj)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		infos = append(infos, attackInfo{
			Offset:     record.Offset,
			Name:       name,
			Damage1:    obj.Fields["damage1"].(float32),
			Damage2:    obj.Fields["damage2"].(float32),
			Damage3:    obj.Fields["damage3"].(float32),
			Stun:       obj.Fields["stun"].(float32),
			Knockback:  obj.Fields["knockback"].(float32),
			Disabled:   obj.Fields["disabled"].(bool),
			KnocksDown: obj.Fields["knocks_down"].(bool),
			HitsOTG:    obj.Fields["hits_otg"].(bool),
			Intangible: obj.Fields["intangible"].(bool),
			Hitboxes:   hitboxes,
		})
	}
	return infos, nil
}

// readHitboxes follows an attack's hitbox pointer array to its
// Game::AttackMoveRegion objects.
func readHitboxes(f *bin.File, attack *bin.Object) ([]attackHitbox, error) {
	regionClass, err := classes.ByName("Game::AttackMoveRegion")
	if err != nil {
		return nil, err
	}

	arrayPtr := int(attack.Fields["hitboxes"].(uint64))
	count := int(attack.Fields["hitbox_count"].(uint64))

	var hitboxes []attackHitbox
	for i := 0; i < count; i++ {
		at := bin.HeaderSize + arrayPtr + i*4
		if at+4 > len(f.Raw) {
			return nil, fmt.Errorf("hitbox pointer %d at %#x out of range", i, at)
		}
		offset := bin.HeaderSize + int(f.Console.Uint32(f.Raw[at:]))

		region, err := f.Object(offset, regionClass)
		if err != nil {
			return nil, err
		}
		hitboxes = append(hitboxes, attackHitbox{
			Offset: offset,
			Delay:  region.Fields["delay"].(float32),
			Width:  region.Fields["width"].(float32),
			Radius: region.Fields["radius"].(float32),
		})
	}
	return hitboxes, nil
}

// writeAttack re-encodes the editable fields of one attack, and of its
// hitboxes, at their recorded offsets.
func writeAttack(buf []byte, info *attackInfo, c console.Console) error {
	class, err := classes.ByName("Game::AttackMoveType")
	if err != nil {
		return err
	}
	obj := &bin.Object{
		Class:  class,
		Offset: info.Offset,
		Fields: map[string]any{
			"damage1":     info.Damage1,
			"damage2":     info.Damage2,
			"damage3":     info.Damage3,
			"stun":        info.Stun,
			"knockback":   info.Knockback,
			"disabled":    info.Disabled,
			"knocks_down": info.KnocksDown,
			"hits_otg":    info.HitsOTG,
			"intangible":  info.Intangible,
		},
	}
	if err := bin.WriteObject(buf, info.Offset, obj, c); err != nil {
		return err
	}

	regionClass, err := classes.ByName("Game::AttackMoveRegion")
	if err != nil {
		return err
	}
	for _, hb := range info.Hitboxes {
		region := &bin.Object{
			Class:  regionClass,
			Offset: hb.Offset,
			Fields: map[string]any{
				"delay":  hb.Delay,
				"width":  hb.Width,
				"radius": hb.Radius,
			},
		}
		if err := bin.WriteObject(buf, hb.Offset, region, c); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	attacksCmd.PersistentFlags().StringVar(&attacksJSON, "json", "attacks.json", "JSON file to write or read")
	attacksPatchCmd.Flags().StringVar(&attacksOutDat, "out-dat", "MASTER.DAT", "path for the rebuilt MASTER.DAT")
	attacksPatchCmd.Flags().StringVar(&attacksOutDir, "out-dir", "MASTER.DIR", "path for the rebuilt MASTER.DIR")
	attacksCmd.AddCommand(attacksDumpCmd)
	attacksCmd.AddCommand(attacksPatchCmd)
	rootCmd.AddCommand(attacksCmd)
}

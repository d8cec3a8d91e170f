// internal/state/towers.go
package state

import (
	"sort"

	"go-tower-sim/internal/defs"
)

// sortedTowerIDs lists tower types in a stable order for the number keys.
func sortedTowerIDs(lib *defs.Library) []string {
	ids := make([]string, 0, len(lib.Towers))
	for id := range lib.Towers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

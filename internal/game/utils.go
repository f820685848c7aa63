// internal/game/utils.go
package game

import (
	"encoding/json"
	"log"
)

// EventJSON marshals a GameEvent into JSON bytes.
// Logs a warning and returns empty JSON "{}" on marshalling error.
func EventJSON(ev GameEvent) []byte {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("WARNING: Failed to marshal GameEvent type %s: %v", ev.Type, err)
		return []byte("{}")
	}
	return data
}

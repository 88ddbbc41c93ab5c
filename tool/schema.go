package tool

import (
	"github.com/invopop/jsonschema"
)

// Schemas returns the JSON schema of each tool's argument object, keyed by
// tool name. Schemas are self-contained so they can be embedded directly in a
// tool listing without resolving $ref pointers.
func Schemas() map[string]*jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}

	return map[string]*jsonschema.Schema{
		"ask":             reflector.Reflect(&AskArgs{}),
		"search_media":    reflector.Reflect(&SearchArgs{}),
		"media_details":   reflector.Reflect(&DetailsArgs{}),
		"trending":        reflector.Reflect(&TrendingArgs{}),
		"resolve_title":   reflector.Reflect(&ResolveArgs{}),
		"season_top":      reflector.Reflect(&SeasonTopArgs{}),
		"airing_status":   reflector.Reflect(&AiringStatusArgs{}),
		"airing_calendar": reflector.Reflect(&AiringCalendarArgs{}),
	}
}

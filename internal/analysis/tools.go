package analysis

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ToolDefinition is a normalized record describing one callable tool or
// function extracted from a configuration document. Tokens covers the
// entire serialized entry, so richer schemas cost more even when the
// description is short.
type ToolDefinition struct {
	Name        string
	Description string
	Tokens      int
	Params      []string // property names, in declared order
	Server      string   // originating MCP server, empty if none
}

// ParseToolDefinitions extracts tool definitions from a raw JSON config
// document. Three shapes are tolerated, tried in order:
//
//   - a flat list under "tools" or "functions", each entry optionally
//     nesting the real definition under "function" (OpenAI style)
//   - an "mcpServers" map from server name to server config, flattened
//     into one list with each entry tagged by its server
//
// A document that is not valid JSON returns an error; callers treat it as
// a non-fatal warning and carry on with an empty list.
func ParseToolDefinitions(data []byte) ([]ToolDefinition, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("config is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, nil
	}

	// First present key wins; a map value under any of them is treated as
	// the mcpServers shape.
	var defs gjson.Result
	for _, key := range []string{"tools", "functions", "mcpServers"} {
		if v := root.Get(key); v.Exists() {
			defs = v
			break
		}
	}

	switch {
	case defs.IsArray():
		return parseToolList(defs), nil
	case defs.IsObject():
		return parseServerMap(defs), nil
	default:
		return nil, nil
	}
}

// parseToolList normalizes a flat sequence of tool entries.
func parseToolList(list gjson.Result) []ToolDefinition {
	var tools []ToolDefinition
	list.ForEach(func(_, entry gjson.Result) bool {
		if entry.IsObject() {
			tools = append(tools, parseToolEntry(entry, ""))
		}
		return true
	})
	return tools
}

// parseServerMap flattens an mcpServers-style mapping into one tool list,
// tagging each entry with its originating server name. A server config
// without its own tools list becomes a single definition named after the
// server, costed over the whole config.
func parseServerMap(servers gjson.Result) []ToolDefinition {
	var tools []ToolDefinition
	servers.ForEach(func(name, conf gjson.Result) bool {
		if !conf.IsObject() {
			return true
		}
		serverTools := conf.Get("tools")
		if !serverTools.IsArray() {
			tools = append(tools, ToolDefinition{
				Name:   name.String(),
				Tokens: EstimateTokens(conf.Raw),
				Server: name.String(),
			})
			return true
		}
		serverTools.ForEach(func(_, entry gjson.Result) bool {
			if entry.IsObject() {
				tools = append(tools, parseToolEntry(entry, name.String()))
			}
			return true
		})
		return true
	})
	return tools
}

// parseToolEntry normalizes one tool entry.
func parseToolEntry(entry gjson.Result, server string) ToolDefinition {
	def := ToolDefinition{
		Name:        firstString(entry, "unknown", "name", "function.name"),
		Description: firstString(entry, "", "description", "function.description"),
		Tokens:      EstimateTokens(entry.Raw),
		Params:      extractParams(entry),
		Server:      server,
	}
	// An explicit server field on the entry wins over the map key.
	if s := entry.Get("server"); s.Type == gjson.String {
		def.Server = s.String()
	}
	return def
}

// firstString returns the first string value found at the given paths.
func firstString(entry gjson.Result, fallback string, paths ...string) string {
	for _, p := range paths {
		if v := entry.Get(p); v.Type == gjson.String {
			return v.String()
		}
	}
	return fallback
}

// paramSchemaPaths lists where a parameter schema may live, in priority
// order. The first one with a non-empty properties mapping wins.
var paramSchemaPaths = []string{"parameters", "input_schema", "function.parameters"}

// extractParams returns the ordered property names of the entry's
// parameter schema.
func extractParams(entry gjson.Result) []string {
	for _, p := range paramSchemaPaths {
		props := entry.Get(p + ".properties")
		if !props.IsObject() {
			continue
		}
		var params []string
		props.ForEach(func(key, _ gjson.Result) bool {
			params = append(params, key.String())
			return true
		})
		if len(params) > 0 {
			return params
		}
	}
	return nil
}

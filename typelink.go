// SPDX-License-Identifier: MIT
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package wavedoc

import "strings"

const (
	engineDatatypeDocs = "https://create.roblox.com/docs/reference/engine/datatypes/"
	engineClassDocs    = "https://create.roblox.com/docs/reference/engine/classes/"
	luauTypeDocs       = "https://create.roblox.com/docs/luau/"
)

// typeLinkGroup maps a set of normalized type aliases to one documentation URL.
type typeLinkGroup struct {
	aliases []string
	url     string
}

// typeLinkGroups is the static alias table for platform datatypes. Group order
// is fixed so resolution stays deterministic; first matching group wins.
var typeLinkGroups = []typeLinkGroup{
	{aliases: []string{"vector3", "vec3"}, url: engineDatatypeDocs + "Vector3"},
	{aliases: []string{"vector2", "vec2"}, url: engineDatatypeDocs + "Vector2"},
	{aliases: []string{"cframe", "coordinateframe"}, url: engineDatatypeDocs + "CFrame"},
	{aliases: []string{"color3", "color"}, url: engineDatatypeDocs + "Color3"},
	{aliases: []string{"udim2"}, url: engineDatatypeDocs + "UDim2"},
	{aliases: []string{"udim"}, url: engineDatatypeDocs + "UDim"},
	{aliases: []string{"brickcolor"}, url: engineDatatypeDocs + "BrickColor"},
	{aliases: []string{"tweeninfo"}, url: engineDatatypeDocs + "TweenInfo"},
	{aliases: []string{"rect"}, url: engineDatatypeDocs + "Rect"},
	{aliases: []string{"ray"}, url: engineDatatypeDocs + "Ray"},
	{aliases: []string{"region3"}, url: engineDatatypeDocs + "Region3"},
	{aliases: []string{"random"}, url: engineDatatypeDocs + "Random"},
	{aliases: []string{"enumitem"}, url: engineDatatypeDocs + "EnumItem"},
	{aliases: []string{"enum"}, url: engineDatatypeDocs + "Enum"},
	{aliases: []string{"instance"}, url: engineClassDocs + "Instance"},
	{aliases: []string{"player"}, url: engineClassDocs + "Player"},
	{aliases: []string{"basepart", "part"}, url: engineClassDocs + "BasePart"},
	{aliases: []string{"model"}, url: engineClassDocs + "Model"},
	{aliases: []string{"rbxscriptsignal", "signal"}, url: engineDatatypeDocs + "RBXScriptSignal"},
	{aliases: []string{"rbxscriptconnection", "connection"}, url: engineDatatypeDocs + "RBXScriptConnection"},
	{aliases: []string{"string", "str"}, url: luauTypeDocs + "strings"},
	{aliases: []string{"number", "float", "int", "integer"}, url: luauTypeDocs + "numbers"},
	{aliases: []string{"boolean", "bool"}, url: luauTypeDocs + "booleans"},
	{aliases: []string{"table", "array", "dictionary", "dict"}, url: luauTypeDocs + "tables"},
	{aliases: []string{"function", "fn", "callback"}, url: luauTypeDocs + "functions"},
	{aliases: []string{"thread", "coroutine"}, url: luauTypeDocs + "types#thread"},
	{aliases: []string{"nil"}, url: luauTypeDocs + "types#nil"},
	{aliases: []string{"any", "variant"}, url: luauTypeDocs + "type-checking#any-type"},
}

// ResolveTypeLink maps a raw type token to a markdown link when the token is a
// known platform datatype. Unmatched tokens are returned verbatim, without
// escaping; matched tokens are embedded with literal braces escaped so table
// type hints like {[string]: number} stay renderer-safe.
func ResolveTypeLink(token string) string {
	normalized := normalizeTypeToken(token)
	if normalized == "" {
		return token
	}

	for _, group := range typeLinkGroups {
		for _, alias := range group.aliases {
			if alias != normalized {
				continue
			}

			return "[" + escapeBraces(token) + "](" + group.url + ")"
		}
	}

	return token
}

// normalizeTypeToken lowercases a token and strips every non-alphanumeric rune.
func normalizeTypeToken(token string) string {
	var out strings.Builder
	out.Grow(len(token))

	for _, r := range strings.ToLower(token) {
		switch {
		case r >= 'a' && r <= 'z':
			out.WriteRune(r)
		case r >= '0' && r <= '9':
			out.WriteRune(r)
		}
	}

	return out.String()
}

// escapeBraces escapes literal opening braces for mdx-safe link text.
func escapeBraces(value string) string {
	return strings.ReplaceAll(value, "{", "\\{")
}

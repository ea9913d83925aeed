package preset

import "embed"

// builtinPresetsFS embeds the builtin preset definitions.
//
//go:embed presets/*.yml
var builtinPresetsFS embed.FS

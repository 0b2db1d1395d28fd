// Package configs embeds the default runtime files that `tasbot setup`
// copies into the runtime directory so operators can edit them.
package configs

import "embed"

//go:embed SYSTEM.md keywords.yaml mcp_config.json
var FS embed.FS

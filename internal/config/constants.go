package config

const (
	// EnvConfigFile names a config file to load when none is given on the command line.
	EnvConfigFile = "A3TOOL_CONFIG"

	// MaxConfigSize is the largest config file the parser reads (1 MiB).
	MaxConfigSize = 1 << 20

	// globalTable is the Lua global holding the configuration.
	globalTable = "a3"
)

// knownFields lists the keys accepted in the a3 table.
var knownFields = map[string]bool{
	"workspace":   true,
	"target":      true,
	"package_dir": true,
	"launcher":    true,
	"os":          true,
}

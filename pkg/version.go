package pokedb

var (
	// Version of pokedb.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)

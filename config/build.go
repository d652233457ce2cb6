package config

// Build metadata, set at link time with -ldflags "-X".
var (
	Version   = "dev"
	Commit    string
	Branch    string
	BuildDate string
)

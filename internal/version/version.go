package version

// Populated at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

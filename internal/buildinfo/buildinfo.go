// Package buildinfo carries version strings stamped in with -ldflags "-X".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short is the compact identifier shown on the splash and in the window title.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	default:
		return "dev"
	}
}

// Long is the full triple for --version and the startup log.
func Long() string {
	return Version + " (" + Commit + ", " + Date + ")"
}

package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/mineflake/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/mineflake/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/mineflake/internal/version.Date={{.Date}}
)

// String returns the one-line version banner.
func String() string {
	return "mineflake " + Version + " (" + Commit + ", " + Date + ")"
}

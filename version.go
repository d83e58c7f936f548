package traducteur

// Version information for traducteur.
// These values can be overridden at build time using ldflags:
//
//	go build -ldflags "-X github.com/Glanita/traducteur.Version=1.0.0"
const (
	// Name is the application name.
	Name = "traducteur"

	// Description is a short description of the application.
	Description = "Discord bot translating chat messages across a configured language set"

	// Version is the semantic version of the application.
	// Override at build time with ldflags for releases.
	Version = "0.1.0"

	// Repository is the source code repository URL.
	Repository = "https://github.com/Glanita/traducteur"
)

// BuildInfo contains build-time information, typically set via ldflags.
var (
	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// FullVersion returns the version string with optional build info.
func FullVersion() string {
	v := Version
	if GitCommit != "unknown" && GitCommit != "" {
		short := GitCommit
		if len(short) > 7 {
			short = short[:7]
		}
		v += "+" + short
	}
	return v
}

// UserAgent returns a user agent string for outbound HTTP requests.
func UserAgent() string {
	return Name + "/" + Version
}

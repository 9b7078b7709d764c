package version

import "runtime"

// Set via -ldflags at build time.
var (
	BuildDate string
	GitCommit string
)

const (
	AppName        = "EUplay"
	AppDescription = "Server event notifier and voice channel music bot"
)

var GoVersion = runtime.Version()

package version

// Version is overridden at build time with -ldflags "-X github.com/bnema/chirp/internal/version.Version=...".
var Version = "dev"

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a backend API base URL (e.g. "https://api.cosplitz.com")
//	-request-timeout outbound request timeout (e.g. "15s", "1m")
//	-storage-driver session store driver ("file" or "sqlite")
//	-s session store path (JSON file or SQLite database file)
//	-c/-config json file path with configs
//
// Flags must precede the CLI subcommand; anything after the first non-flag
// argument is left for the command dispatcher.
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, nil)
}

// parseFlags registers the configuration flags on fs and parses args.
// When fs is flag.CommandLine, args is ignored and the process arguments
// are used. Split out from ParseFlags so tests can run against a fresh
// flag set.
func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var apiBaseURL string
	var requestTimeout time.Duration
	var storageDriver string
	var storagePath string
	var jsonConfigPath string

	fs.StringVar(&apiBaseURL, "a", "", "Backend API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&storageDriver, "storage-driver", "", "Session store driver (file or sqlite)")
	fs.StringVar(&storagePath, "s", "", "Session store path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if fs == flag.CommandLine {
		flag.Parse()
	} else {
		_ = fs.Parse(args)
	}

	return &StructuredConfig{
		API: API{
			BaseURL:        apiBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Driver: storageDriver,
			Path:   storagePath,
		},
		JSONFilePath: jsonConfigPath,
	}
}

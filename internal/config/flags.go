package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN
//	-backend-url sync backend base URL
//	-container-id remote sync container identifier
//	-device-token backend device bearer token
//	-notify-address push-signal listener address in format [host]:[port]
//	-request-timeout outbound backend request timeout (e.g., "30s", "1m")
//	-sync-interval periodic sync worker interval (e.g., "5m")
//	-capture-interval clipboard poll interval (e.g., "1s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var backendURL string
	var containerID string
	var deviceToken string
	var notifyAddress string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var captureInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&backendURL, "backend-url", "", "Sync backend base URL")
	flag.StringVar(&containerID, "container-id", "", "Remote sync container identifier")
	flag.StringVar(&deviceToken, "device-token", "", "Backend device token")
	flag.StringVar(&notifyAddress, "notify-address", "", "Push-signal listener address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Backend request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 5m)")
	flag.DurationVar(&captureInterval, "capture-interval", 0, "Clipboard poll interval (e.g., 1s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Backend: Backend{
			BaseURL:        backendURL,
			ContainerID:    containerID,
			DeviceToken:    deviceToken,
			RequestTimeout: requestTimeout,
		},
		Notify: Notify{
			HTTPAddress: notifyAddress,
		},
		Workers: Workers{
			SyncInterval:    syncInterval,
			CaptureInterval: captureInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

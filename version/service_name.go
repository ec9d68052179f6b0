package version

import "os"

// DefaultServiceName is reported when METHODHANDLES_SERVICE_NAME is not set.
const DefaultServiceName = "methodhandles"

// ServiceName returns the service name used for telemetry and logs.
func ServiceName() string {
	if name := os.Getenv("METHODHANDLES_SERVICE_NAME"); name != "" {
		return name
	}

	return DefaultServiceName
}

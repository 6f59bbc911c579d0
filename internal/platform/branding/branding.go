// Package branding holds product identity shared by commands and telemetry.
package branding

// AppName is the product name shown to visitors.
const AppName = "Empower Economy"

// ServicePrefix namespaces telemetry service names.
const ServicePrefix = "empower"

// ServiceName returns the telemetry name for one command.
func ServiceName(service string) string {
	return ServicePrefix + "-" + service
}

// ABOUTME: Version information for the alarm generator
// ABOUTME: Reported by the -version flag and in logs
package version

const (
	Version      = "0.1.0"
	Product      = "Tung Tung Sahur Alarm"
	Manufacturer = "Sahur Alarm Project"
)

// Package platform sends desktop notifications through whatever the host
// operating system provides.
package platform

// AppName identifies the application to the notification service.
const AppName = "Mandelview"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
}

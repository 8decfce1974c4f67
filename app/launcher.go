package app

// Launcher hands a story URL to the desktop.
type Launcher interface {
	// Open shows the URL in the default browser.
	Open(url string) error

	// Copy places the URL on the system clipboard.
	Copy(url string) error
}

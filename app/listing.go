package app

import "github.com/CrestNiraj12/hn/domain"

// ListingStore persists the most recent listing between invocations.
// Implemented by infrastructure (a JSON file on disk, or memory in tests).
type ListingStore interface {
	// SaveListing replaces the stored listing.
	SaveListing(l domain.Listing) error

	// LoadListing returns the stored listing. It returns a
	// *domain.NotFoundError wrapping domain.ErrNoListing when nothing
	// has been saved yet.
	LoadListing() (domain.Listing, error)
}

package hn

import (
	"strconv"

	"github.com/CrestNiraj12/hn/domain"
)

const itemPath = "/item"

// ListingURL returns the address of a category's ranked identifiers.
func ListingURL(base string, c domain.Category) string {
	return base + c.Path() + ".json"
}

// ItemURL returns the address of a single item.
func ItemURL(base string, id int) string {
	return base + itemPath + "/" + strconv.Itoa(id) + ".json"
}

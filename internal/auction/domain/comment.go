package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	AuthorID  uuid.UUID
	Content   string
	CreatedAt time.Time
}

// NewComment trims content and rejects empty comments.
func NewComment(id, listingID, authorID uuid.UUID, content string, createdAt time.Time) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}
	return &Comment{
		ID:        id,
		ListingID: listingID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: createdAt,
	}, nil
}

// Category is a flat lookup entry for listings.
type Category struct {
	ID   int64
	Name string
}

// DefaultCategories seeds the category lookup.
var DefaultCategories = []string{
	"Antiques",
	"Art",
	"Baby",
	"Books",
	"Business & Industrial",
	"Cameras & Photo",
	"Cell Phones & Accessories",
	"Clothing, Shoes & Accessories",
	"Coins & Paper Money",
	"Collectibles",
	"Computers/Tablets & Networking",
	"Consumer Electronics",
	"Crafts",
	"Drones & Multirotors",
	"Electronics",
	"Entertainment Memorabilia",
	"Gift Cards & Coupons",
	"Health & Beauty",
	"Home & Garden",
	"Jewelry & Watches",
	"Music",
	"Pet Supplies",
	"Pottery & Glass",
	"Real Estate",
	"Sporting Goods",
	"Sports Mem, Cards & Fan Shop",
	"Stamps",
	"Tickets & Experiences",
	"Toys & Hobbies",
	"Travel",
	"Video Games & Consoles",
}

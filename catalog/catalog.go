// Package catalog holds the static tour data served when the store is
// unavailable or empty. It is a read-only snapshot with fixed identifiers and
// is never written back to the store.
package catalog

import "oyow/models"

var fallbackTours = []models.Tour{
	{
		TourID:      "1",
		Title:       "Mountain Adventure",
		Description: "Explore the beautiful mountain ranges with our experienced guides",
		Price:       299,
		Duration:    3,
		Location:    "Mount Kenya, Kenya",
		Image:       "/assets/mountain-adventure.jpg",
		Highlights:  []string{"Mountain Climbing", "Scenic Views", "Expert Guides"},
		Rating:      4.8,
		IsActive:    true,
	},
	{
		TourID:      "2",
		Title:       "City Tour",
		Description: "Discover the hidden gems of the city with our local experts",
		Price:       149,
		Duration:    1,
		Location:    "Nairobi, Kenya",
		Image:       "/assets/city-tour.jpg",
		Highlights:  []string{"Local Culture", "Historical Sites", "Food Tasting"},
		Rating:      4.5,
		IsActive:    true,
	},
	{
		TourID:      "3",
		Title:       "Beach Paradise",
		Description: "Relax and enjoy the pristine beaches and crystal clear waters",
		Price:       399,
		Duration:    4,
		Location:    "Diani Beach, Kenya",
		Image:       "/assets/beach-paradise.jpg",
		Highlights:  []string{"Beach Activities", "Water Sports", "Luxury Resort"},
		Rating:      4.9,
		IsActive:    true,
	},
}

// Tours returns a copy of the catalog so callers cannot mutate it.
func Tours() []models.Tour {
	out := make([]models.Tour, len(fallbackTours))
	copy(out, fallbackTours)
	return out
}

// FindByID looks a tour up by its fixed identifier.
func FindByID(id string) (models.Tour, bool) {
	for _, t := range fallbackTours {
		if t.TourID == id {
			return t, true
		}
	}
	return models.Tour{}, false
}

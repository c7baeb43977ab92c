// Package seed loads the sample tours into the store.
package seed

import (
	"context"

	"oyow/models"
	"oyow/store"
)

var sampleTours = []models.Tour{
	{
		TourID:      "1",
		Title:       "Mountain Adventure",
		Description: "Explore the beautiful mountain ranges with our experienced guides",
		Price:       299,
		Duration:    3,
		Location:    "Mount Kenya, Kenya",
		Image:       "/assets/mountain-adventure.jpg",
		Highlights:  []string{"Mountain Climbing", "Scenic Views", "Expert Guides", "Equipment Included"},
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
		Highlights:  []string{"Local Culture", "Historical Sites", "Food Tasting", "Transport Included"},
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
		Highlights:  []string{"Beach Activities", "Water Sports", "Luxury Resort", "All Inclusive"},
		Rating:      4.9,
		IsActive:    true,
	},
	{
		TourID:      "4",
		Title:       "Safari Adventure",
		Description: "Experience the wild beauty of African wildlife in their natural habitat",
		Price:       599,
		Duration:    5,
		Location:    "Maasai Mara, Kenya",
		Image:       "/assets/safari-adventure.jpg",
		Highlights:  []string{"Big Five Safari", "Luxury Lodges", "Expert Guides", "Photography"},
		Rating:      4.9,
		IsActive:    true,
	},
}

// Run replaces the tours collection with the sample data.
func Run(ctx context.Context, tours store.TourStore) error {
	return tours.ReplaceAll(ctx, sampleTours)
}

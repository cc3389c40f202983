// Package seed fills an empty database with the default traveller and the
// destination catalogue.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"wanderwith/internal/model"
	"wanderwith/internal/repository"
	"wanderwith/internal/utils"

	"github.com/go-playground/validator/v10"
)

// DefaultUser is created when the users table is empty
var DefaultUser = model.User{
	Name:  "Travel Enthusiast",
	Email: "user@example.com",
	Phone: "+91 98765 43210",
}

const defaultUserPassword = "password123"

// Seeder inserts initial data through the repositories
type Seeder struct {
	users        repository.UserRepository
	destinations repository.DestinationRepository
	validate     *validator.Validate
}

// NewSeeder creates a new Seeder
func NewSeeder(users repository.UserRepository, destinations repository.DestinationRepository) *Seeder {
	return &Seeder{users: users, destinations: destinations, validate: validator.New()}
}

// Run creates the default user and the destinations when their tables are empty
func (s *Seeder) Run(ctx context.Context) error {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check users: %w", err)
	}
	if userCount == 0 {
		hash, err := utils.HashPassword(defaultUserPassword)
		if err != nil {
			return fmt.Errorf("failed to hash default user password: %w", err)
		}
		user := DefaultUser
		user.PasswordHash = hash
		user.CreatedAt = time.Now()
		if err := s.users.Create(ctx, &user); err != nil {
			return fmt.Errorf("failed to create default user: %w", err)
		}
		log.Printf("Created default user %s (ID: %d)", user.Email, user.ID)
	}

	destinationCount, err := s.destinations.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check destinations: %w", err)
	}
	if destinationCount > 0 {
		return nil
	}

	for _, d := range Destinations() {
		if err := s.validate.Struct(d); err != nil {
			return fmt.Errorf("invalid seed destination %q: %w", d.Name, err)
		}
		if err := s.destinations.Create(ctx, &d); err != nil {
			return fmt.Errorf("failed to seed destination %q: %w", d.Name, err)
		}
	}
	log.Println("Database initialized with destinations!")
	return nil
}

// Destinations returns the initial destination catalogue
func Destinations() []model.Destination {
	return []model.Destination{
		{
			Name:        "Goa Beach Paradise",
			Type:        model.CategoryBeach,
			Description: "Experience the golden beaches and vibrant nightlife of Goa. Perfect blend of relaxation and adventure.",
			Price:       15000,
			Duration:    "3 Days, 2 Nights",
			ImageURL:    "https://images.unsplash.com/photo-1512343879784-a960bf40e7f2?w=800",
			Rating:      4.8,
			GuideName:   "Rajesh Kumar",
			MeetingSpot: "Panaji Bus Stand",
			Inclusions:  []string{"Hotel Accommodation", "Breakfast & Dinner", "Airport Transfers", "Sightseeing Tours"},
			Exclusions:  []string{"Lunch", "Personal Expenses", "Water Sports", "Travel Insurance"},
		},
		{
			Name:        "Manali Mountain Trek",
			Type:        model.CategoryMountain,
			Description: "Explore the majestic Himalayas with guided treks through Manali's scenic landscapes.",
			Price:       22000,
			Duration:    "5 Days, 4 Nights",
			ImageURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800",
			Rating:      4.9,
			GuideName:   "Vikram Singh",
			MeetingSpot: "Manali Mall Road",
			Inclusions:  []string{"Mountain Lodge Stay", "All Meals", "Trekking Gear", "Expert Guide"},
			Exclusions:  []string{"Personal Medication", "Extra Activities", "Laundry"},
		},
		{
			Name:        "Jaipur Heritage Tour",
			Type:        model.CategoryCultural,
			Description: "Discover the royal heritage of Rajasthan with visits to magnificent palaces and forts.",
			Price:       12000,
			Duration:    "2 Days, 1 Night",
			ImageURL:    "https://images.unsplash.com/photo-1599661046289-e31897846e41?w=800",
			Rating:      4.7,
			GuideName:   "Meera Sharma",
			MeetingSpot: "Jaipur Railway Station",
			Inclusions:  []string{"Heritage Hotel Stay", "All Meals", "Entry Tickets", "Cultural Shows"},
			Exclusions:  []string{"Shopping", "Extra Sightseeing", "Tips"},
		},
		{
			Name:        "Kerala Backwaters",
			Type:        model.CategoryNature,
			Description: "Sail through the serene backwaters of Kerala on a traditional houseboat.",
			Price:       18000,
			Duration:    "4 Days, 3 Nights",
			ImageURL:    "https://images.unsplash.com/photo-1602216056096-3b40cc0c9944?w=800",
			Rating:      4.9,
			GuideName:   "Suresh Menon",
			MeetingSpot: "Alleppey Boat Jetty",
			Inclusions:  []string{"Houseboat Stay", "Kerala Cuisine", "Sunset Cruise", "Village Tours"},
			Exclusions:  []string{"Alcohol", "Ayurvedic Spa", "Extra Excursions"},
		},
		{
			Name:        "Rishikesh Adventure",
			Type:        model.CategoryAdventure,
			Description: "White water rafting, bungee jumping, and yoga in the adventure capital of India.",
			Price:       16000,
			Duration:    "3 Days, 2 Nights",
			ImageURL:    "https://images.unsplash.com/photo-1626621341517-bbf3d9990a23?w=800",
			Rating:      4.8,
			GuideName:   "Aditya Verma",
			MeetingSpot: "Rishikesh Bus Stand",
			Inclusions:  []string{"Camp Stay", "All Meals", "Rafting Equipment", "Safety Gear"},
			Exclusions:  []string{"Bungee Jump Fee", "Personal Insurance", "Extra Activities"},
		},
		{
			Name:        "Andaman Islands",
			Type:        model.CategoryBeach,
			Description: "Crystal clear waters, pristine beaches, and amazing coral reefs await you.",
			Price:       35000,
			Duration:    "6 Days, 5 Nights",
			ImageURL:    "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800",
			Rating:      5.0,
			GuideName:   "Joseph Peter",
			MeetingSpot: "Port Blair Airport",
			Inclusions:  []string{"Beach Resort", "Island Hopping", "Scuba Diving", "All Transfers"},
			Exclusions:  []string{"Flights", "Alcohol", "Water Sports Extras"},
		},
		{
			Name:        "Ladakh Expedition",
			Type:        model.CategoryMountain,
			Description: "Journey through the highest motorable passes and stunning mountain landscapes.",
			Price:       28000,
			Duration:    "7 Days, 6 Nights",
			ImageURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800",
			Rating:      4.9,
			GuideName:   "Tashi Dorje",
			MeetingSpot: "Leh Airport",
			Inclusions:  []string{"Hotel Stay", "All Meals", "4x4 Vehicle", "Permits"},
			Exclusions:  []string{"Flights", "Alcohol", "Personal Gear"},
		},
		{
			Name:        "Varanasi Spiritual Journey",
			Type:        model.CategoryCultural,
			Description: "Experience the spiritual heart of India with Ganga Aarti and temple visits.",
			Price:       10000,
			Duration:    "2 Days, 1 Night",
			ImageURL:    "https://images.unsplash.com/photo-1561361513-2d000a50f0dc?w=800",
			Rating:      4.6,
			GuideName:   "Pandit Sharma",
			MeetingSpot: "Varanasi Junction",
			Inclusions:  []string{"Hotel Stay", "Breakfast", "Boat Ride", "Temple Guide"},
			Exclusions:  []string{"Lunch/Dinner", "Donations", "Shopping"},
		},
	}
}

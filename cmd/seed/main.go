package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"kejaspace/internal/database"
	"kejaspace/internal/domain"
	"kejaspace/internal/repository"
)

func main() {
	ctx := context.Background()

	db, err := database.Connect("kejaspace.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	store := repository.NewDatabaseStorage(db)

	log.Println("Running AutoMigrate...")
	if err := store.AutoMigrate(); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM messages")
	db.Exec("DELETE FROM conversations")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM moving_bookings")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM moving_services")
	db.Exec("DELETE FROM marketplace_items")
	db.Exec("DELETE FROM properties")
	db.Exec("DELETE FROM user_profiles")
	db.Exec("DELETE FROM accounts")
	db.Exec("DELETE FROM users")

	// ================== ACCOUNTS ==================
	log.Println("Creating demo account...")

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	account := &domain.Account{Email: "demo@kejaspace.co.ke", PasswordHash: string(hash)}
	if err := store.CreateAccount(ctx, account); err != nil {
		log.Fatal("create account: ", err)
	}
	profile := &domain.UserProfile{
		ID:       account.ID,
		FullName: "Demo Tenant",
		Phone:    "+254 712 345 678",
		UserType: domain.UserTenant,
		Verified: true,
	}
	if err := store.CreateUserProfile(ctx, profile); err != nil {
		log.Fatal("create profile: ", err)
	}
	log.Println("Demo account: demo@kejaspace.co.ke / demo1234")

	// ================== PROPERTIES ==================
	log.Println("Creating properties...")

	properties := []domain.Property{
		{
			Title: "Modern 2BR Apartment in Kilimani", Location: "Kilimani, Nairobi",
			Price: 65000, PriceType: domain.PricePerMonth,
			Rating: 4.8, Reviews: 24, Bedrooms: 2, Bathrooms: 2, Area: 95,
			Image: "https://images.kejaspace.co.ke/properties/kilimani-2br.jpg",
			Type:  domain.PropertyRental, Featured: true,
			Management: domain.Management{Kind: domain.ManagedByAgency, Name: "Pam Golding Kenya", Verified: true},
		},
		{
			Title: "Cozy Bedsitter near Yaya Centre", Location: "Kilimani, Nairobi",
			Price: 18000, PriceType: domain.PricePerMonth,
			Rating: 4.2, Reviews: 11, Bedrooms: domain.BedroomsBedsitter, Bathrooms: 1, Area: 25,
			Image: "https://images.kejaspace.co.ke/properties/yaya-bedsitter.jpg",
			Type:  domain.PropertyRental,
			Management: domain.Management{Kind: domain.ManagedByLandlord, Name: "Jane Wanjiru", Verified: true},
		},
		{
			Title: "Single Room in Kasarani", Location: "Kasarani, Nairobi",
			Price: 7500, PriceType: domain.PricePerMonth,
			Rating: 3.9, Reviews: 5, Bedrooms: domain.BedroomsSingleRoom, Bathrooms: 1, Area: 12,
			Image: "https://images.kejaspace.co.ke/properties/kasarani-single.jpg",
			Type:  domain.PropertyRental,
			Management: domain.Management{Kind: domain.ManagedByLandlord, Name: "Peter Omondi"},
		},
		{
			Title: "Beachfront Studio, Nyali", Location: "Nyali, Mombasa",
			Price: 8500, PriceType: domain.PricePerNight,
			Rating: 4.9, Reviews: 87, Bedrooms: 1, Bathrooms: 1, Area: 40,
			Image: "https://images.kejaspace.co.ke/properties/nyali-studio.jpg",
			Type:  domain.PropertyAirbnb, Featured: true,
			Management: domain.Management{Kind: domain.ManagedByAgency, Name: "Coast Stays", Verified: true},
		},
		{
			Title: "Garden Cottage in Karen", Location: "Karen, Nairobi",
			Price: 12000, PriceType: domain.PricePerNight,
			Rating: 4.7, Reviews: 41, Bedrooms: 3, Bathrooms: 2, Area: 150,
			Image: "https://images.kejaspace.co.ke/properties/karen-cottage.jpg",
			Type:  domain.PropertyAirbnb,
		},
		{
			Title: "Open-plan Office, Westlands", Location: "Westlands, Nairobi",
			Price: 120000, PriceType: domain.PricePerMonth,
			Rating: 4.5, Reviews: 9, Bathrooms: 2, Area: 220,
			Image: "https://images.kejaspace.co.ke/properties/westlands-office.jpg",
			Type:  domain.PropertyOffice, Featured: true,
			Management: domain.Management{Kind: domain.ManagedByAgency, Name: "Knight Frank Kenya", Verified: true},
		},
	}
	for i := range properties {
		if err := store.CreateProperty(ctx, &properties[i]); err != nil {
			log.Fatal("create property: ", err)
		}
	}

	// ================== MARKETPLACE ==================
	log.Println("Creating marketplace items...")

	items := []domain.MarketplaceItem{
		{Title: "5-seater Fabric Sofa", Price: 42000, Condition: "used", Location: "Ngong Road, Nairobi",
			Image: "https://images.kejaspace.co.ke/market/sofa.jpg", Category: "furniture"},
		{Title: "Samsung 55\" Smart TV", Price: 58000, Condition: "new", Location: "CBD, Nairobi",
			Image: "https://images.kejaspace.co.ke/market/tv.jpg", Category: "electronics"},
		{Title: "Ramtons Fridge, 210L", Price: 31000, Condition: "used", Location: "Thika",
			Image: "https://images.kejaspace.co.ke/market/fridge.jpg", Category: "appliances"},
		{Title: "Queen Bed with Mattress", Price: 25000, Condition: "used", Location: "Ruaka",
			Image: "https://images.kejaspace.co.ke/market/bed.jpg", Category: "furniture"},
	}
	for i := range items {
		if err := store.CreateMarketplaceItem(ctx, &items[i]); err != nil {
			log.Fatal("create marketplace item: ", err)
		}
	}

	// ================== MOVING SERVICES ==================
	log.Println("Creating moving services...")

	services := []domain.MovingService{
		{
			Name: "Swift Movers Kenya", Rating: 4.9, Reviews: 132, Location: "Nairobi",
			Services:   []string{"packing", "transport", "storage"},
			PriceRange: "KSh 8,000 - 45,000", Verified: true,
			Image: "https://images.kejaspace.co.ke/movers/swift.jpg",
		},
		{
			Name: "Taylor Movers", Rating: 4.8, Reviews: 98, Location: "Nairobi",
			Services:   []string{"packing", "transport", "office relocation"},
			PriceRange: "KSh 10,000 - 60,000", Verified: true,
			Image: "https://images.kejaspace.co.ke/movers/taylor.jpg",
		},
		{
			Name: "Coast Relocations", Rating: 4.7, Reviews: 44, Location: "Mombasa",
			Services:   []string{"transport", "storage"},
			PriceRange: "KSh 6,000 - 30,000",
			Image: "https://images.kejaspace.co.ke/movers/coast.jpg",
		},
	}
	for i := range services {
		if err := store.CreateMovingService(ctx, &services[i]); err != nil {
			log.Fatal("create moving service: ", err)
		}
	}

	log.Printf("Seed complete: %d properties, %d marketplace items, %d moving services",
		len(properties), len(items), len(services))
}

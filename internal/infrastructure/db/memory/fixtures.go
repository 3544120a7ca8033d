package memory

import (
	"time"

	"github.com/vista-store/storefront/internal/core/domain"
)

func day(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// seedProducts is the development catalog: pillows, mattresses, and
// accessories with stable ids and creation timestamps.
var seedProducts = []domain.Product{
	{
		ID:          1,
		Name:        "Fiber Pillow",
		Description: "Premium quality fiber pillow for comfortable sleep. Soft, breathable, and hypoallergenic.",
		Price:       24.99,
		Category:    "Pillows",
		Image:       "https://images.unsplash.com/photo-1586075010923-2dd4570fb338?w=500&h=500&fit=crop",
		Rating:      4.8,
		Stock:       45,
		CreatedAt:   day("2024-01-15T10:00:00Z"),
	},
	{
		ID:          2,
		Name:        "Quilted Pillows",
		Description: "Luxurious quilted pillows with diamond pattern stitching for enhanced comfort and durability.",
		Price:       34.99,
		Category:    "Pillows",
		Image:       "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?w=500&h=500&fit=crop",
		Rating:      4.7,
		Stock:       32,
		CreatedAt:   day("2024-01-14T10:00:00Z"),
	},
	{
		ID:          3,
		Name:        "Fiber Cushions",
		Description: "Comfortable fiber cushions perfect for chairs and sofas. Available in multiple sizes.",
		Price:       18.99,
		Category:    "Cushions",
		Image:       "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=500&h=500&fit=crop",
		Rating:      4.5,
		Stock:       60,
		CreatedAt:   day("2024-01-13T10:00:00Z"),
	},
	{
		ID:          4,
		Name:        "Fiber Booster Pillows",
		Description: "Extra firm fiber booster pillows for enhanced neck and head support during sleep.",
		Price:       29.99,
		Category:    "Pillows",
		Image:       "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=500&h=500&fit=crop",
		Rating:      4.6,
		Stock:       28,
		CreatedAt:   day("2024-01-12T10:00:00Z"),
	},
	{
		ID:          5,
		Name:        "Memory Foam Pillows",
		Description: "Contour memory foam pillows that adapt to your head and neck shape for optimal comfort.",
		Price:       49.99,
		Category:    "Pillows",
		Image:       "https://images.unsplash.com/photo-1541781774459-bb2af2f05b55?w=500&h=500&fit=crop",
		Rating:      4.9,
		Stock:       25,
		CreatedAt:   day("2024-01-11T10:00:00Z"),
	},
	{
		ID:          6,
		Name:        "Single Sheet Foam Pillows",
		Description: "Lightweight single sheet foam pillows, perfect for travel and everyday use.",
		Price:       19.99,
		Category:    "Pillows",
		Image:       "https://images.unsplash.com/photo-1584464491033-06628f3a6b7b?w=500&h=500&fit=crop",
		Rating:      4.4,
		Stock:       50,
		CreatedAt:   day("2024-01-10T10:00:00Z"),
	},
	{
		ID:          7,
		Name:        "Single Bed PUF Mattress",
		Description: "High-quality PUF mattress for single beds. Provides excellent support and comfort.",
		Price:       149.99,
		Category:    "Mattresses",
		Image:       "https://images.unsplash.com/photo-1505693314120-0d443867891c?w=500&h=500&fit=crop",
		Rating:      4.7,
		Stock:       15,
		CreatedAt:   day("2024-01-09T10:00:00Z"),
	},
	{
		ID:          8,
		Name:        "Double Bed Mattresses",
		Description: "Premium double bed mattresses with superior comfort and long-lasting durability.",
		Price:       299.99,
		Category:    "Mattresses",
		Image:       "https://images.unsplash.com/photo-1560185893-a55cbc8c57e8?w=500&h=500&fit=crop",
		Rating:      4.8,
		Stock:       12,
		CreatedAt:   day("2024-01-08T10:00:00Z"),
	},
	{
		ID:          9,
		Name:        "PUF Sofa-Cum-Bed Mattresses",
		Description: "Versatile sofa-cum-bed mattresses perfect for multi-functional living spaces.",
		Price:       199.99,
		Category:    "Mattresses",
		Image:       "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500&h=500&fit=crop",
		Rating:      4.6,
		Stock:       18,
		CreatedAt:   day("2024-01-07T10:00:00Z"),
	},
	{
		ID:          10,
		Name:        "PUF SOFA Sheet",
		Description: "Protective and comfortable PUF sofa sheets available in various colors and sizes.",
		Price:       39.99,
		Category:    "Accessories",
		Image:       "https://images.unsplash.com/photo-1567538096630-e0c55bd6374c?w=500&h=500&fit=crop",
		Rating:      4.5,
		Stock:       35,
		CreatedAt:   day("2024-01-06T10:00:00Z"),
	},
	{
		ID:          11,
		Name:        "Mattresses Chain Cover For All Sizes",
		Description: "Universal mattress chain covers that fit all sizes. Waterproof and easy to clean.",
		Price:       24.99,
		Category:    "Accessories",
		Image:       "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?w=500&h=500&fit=crop",
		Rating:      4.3,
		Stock:       40,
		CreatedAt:   day("2024-01-05T10:00:00Z"),
	},
}

// seedAccount is a development login; passwords are bcrypt-hashed at seed time.
type seedAccount struct {
	user     domain.User
	password string
}

var seedAccounts = []seedAccount{
	{
		user: domain.User{
			ID:     "1",
			Name:   "Admin User",
			Email:  "admin@vista.com",
			Role:   domain.RoleAdmin,
			Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
		},
		password: "admin123",
	},
	{
		user: domain.User{
			ID:     "2",
			Name:   "John Doe",
			Email:  "user@vista.com",
			Role:   domain.RoleCustomer,
			Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop&crop=face",
		},
		password: "user123",
	},
}

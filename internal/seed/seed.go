// Package seed provides the dataset written on first run, when the
// snapshot store has no record yet.
package seed

import (
	"time"

	"github.com/ruralroots/directory-api/internal/core/domain"
)

func date(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("seed: bad date literal: " + value)
	}
	return t
}

// Snapshot returns a fresh copy of the sample dataset: three accounts
// (one per role), eight farms across six regions, and two job postings.
// Ratings are carried as authored in the dataset; they recompute to the
// review mean only once a new review is appended.
func Snapshot() *domain.Snapshot {
	users := []domain.User{
		{ID: "u1", Name: "Alice Customer", Email: "customer@test.com", Password: "password", Role: domain.RoleCustomer},
		{ID: "u2", Name: "Bob Farmer", Email: "farm@test.com", Password: "password", Role: domain.RoleFarm},
		{ID: "u3", Name: "Charlie Worker", Email: "worker@test.com", Password: "password", Role: domain.RoleWorker},
	}

	farms := []domain.Farm{
		{
			ID:          "f1",
			OwnerID:     "u2",
			Name:        "Green Valley Organics",
			Location:    "Sonoma, CA",
			Region:      "North America",
			Description: "A family-owned farm specializing in certified organic vegetables, fruits, and free-range eggs. We believe in sustainable agriculture and providing the freshest produce to our community.",
			Tags:        []string{"organic", "vegetables", "eggs", "family-friendly"},
			Rating:      4.5,
			Contact:     "contact@greenvalley.com",
			Website:     "https://greenvalley.com",
			Images:      []string{"https://picsum.photos/seed/farm1/800/600", "https://picsum.photos/seed/farm1a/800/600"},
			Reviews: []domain.Review{
				{ID: "r1", UserID: "u1", UserName: "Alice Customer", Rating: 5, Text: "Absolutely fantastic produce and the friendliest staff. The organic strawberries were the best I have ever tasted!", Date: date("2023-10-26T10:00:00Z")},
				{ID: "r2", UserID: "u3", UserName: "Charlie Worker", Rating: 4, Text: "A great place to visit. The corn maze was fun for the whole family. A bit crowded on weekends, though.", Date: date("2023-10-22T14:30:00Z")},
			},
		},
		{
			ID:          "f2",
			OwnerID:     "u2",
			Name:        "Sunny Meadows Dairy",
			Location:    "Upstate, NY",
			Region:      "North America",
			Description: "Home to the happiest cows and the freshest dairy products. We offer milk, cheese, and yogurt, all made on-site from our pasture-raised cows.",
			Tags:        []string{"dairy", "cheese", "milk", "organic"},
			Rating:      4.8,
			Contact:     "info@sunnymeadows.com",
			Website:     "https://sunnymeadows.com",
			Images:      []string{"https://picsum.photos/seed/farm2/800/600", "https://picsum.photos/seed/farm2a/800/600"},
			Reviews: []domain.Review{
				{ID: "r3", UserID: "u1", UserName: "Alice Customer", Rating: 5, Text: "The best cheese I have ever had. You can taste the quality and care.", Date: date("2023-11-05T08:00:00Z")},
			},
		},
		{
			ID:          "f3",
			OwnerID:     "u2",
			Name:        "Orchard Grove",
			Location:    "Wenatchee, WA",
			Region:      "North America",
			Description: "Famous for our wide variety of apples and seasonal fruit picking. A perfect destination for a fall day trip. Come and taste our award-winning apple cider.",
			Tags:        []string{"apples", "fruit-picking", "cider", "family-friendly"},
			Rating:      4.2,
			Contact:     "visit@orchardgrove.com",
			Website:     "https://orchardgrove.com",
			Images:      []string{"https://picsum.photos/seed/farm3/800/600", "https://picsum.photos/seed/farm3a/800/600"},
			Reviews:     []domain.Review{},
		},
		{
			ID:          "f4",
			OwnerID:     "u2",
			Name:        "Maple Leaf Acres",
			Location:    "Niagara, ON",
			Region:      "North America",
			Description: "Experience Canadian agriculture at its finest. We specialize in maple syrup production and offer guided tours during the spring season.",
			Tags:        []string{"maple-syrup", "tours", "family-friendly"},
			Rating:      4.9,
			Contact:     "info@mapleleafacres.com",
			Website:     "https://mapleleafacres.com",
			Images:      []string{"https://picsum.photos/seed/farm4/800/600", "https://picsum.photos/seed/farm4a/800/600"},
			Reviews: []domain.Review{
				{ID: "r4", UserID: "u1", UserName: "Alice Customer", Rating: 5, Text: "The maple syrup is out of this world! A must-visit if you are in the area.", Date: date("2023-11-03T16:45:00Z")},
			},
		},
		{
			ID:          "f5",
			OwnerID:     "u2",
			Name:        "Amazonas Agroforest",
			Location:    "Manaus, Brazil",
			Region:      "South America",
			Description: "A sustainable agroforestry project deep in the heart of Brazil. We cultivate acai, Brazil nuts, and other native fruits while preserving the rainforest.",
			Tags:        []string{"agroforestry", "acai", "sustainable", "tours"},
			Rating:      4.7,
			Contact:     "contact@amazonasagro.com",
			Website:     "https://amazonasagro.com",
			Images:      []string{"https://picsum.photos/seed/farm5/800/600", "https://picsum.photos/seed/farm5a/800/600"},
			Reviews:     []domain.Review{},
		},
		{
			ID:          "f6",
			OwnerID:     "u2",
			Name:        "Kyoto Tea Gardens",
			Location:    "Uji, Japan",
			Region:      "Asia",
			Description: "Generations of tea masters cultivating the finest Gyokuro and Matcha. Participate in a traditional tea ceremony and learn about our history.",
			Tags:        []string{"tea", "matcha", "organic", "tours"},
			Rating:      4.9,
			Contact:     "info@kyototea.jp",
			Website:     "https://kyototea.jp",
			Images:      []string{"https://picsum.photos/seed/farm6/800/600", "https://picsum.photos/seed/farm6a/800/600"},
			Reviews:     []domain.Review{},
		},
		{
			ID:          "f7",
			OwnerID:     "u2",
			Name:        "Savanna Blooms",
			Location:    "Naivasha, Kenya",
			Region:      "Africa",
			Description: "A leading grower of fair-trade roses and other flowers, using geothermal energy and sustainable water practices. Our flowers are exported globally.",
			Tags:        []string{"flowers", "roses", "fair-trade", "sustainable"},
			Rating:      4.6,
			Contact:     "sales@savannablooms.com",
			Website:     "https://savannablooms.com",
			Images:      []string{"https://picsum.photos/seed/farm7/800/600", "https://picsum.photos/seed/farm7a/800/600"},
			Reviews:     []domain.Review{},
		},
		{
			ID:          "f8",
			OwnerID:     "u2",
			Name:        "Tuscan Sun Vineyards",
			Location:    "Florence, Italy",
			Region:      "Europe",
			Description: "Historic vineyard in the heart of Tuscany producing world-class Chianti. Join us for wine tasting tours and cooking classes.",
			Tags:        []string{"wine", "vineyard", "tours", "organic"},
			Rating:      4.8,
			Contact:     "ciao@tuscansun.it",
			Website:     "https://tuscansun.it",
			Images:      []string{"https://picsum.photos/seed/farm8/800/600", "https://picsum.photos/seed/farm8a/800/600"},
			Reviews:     []domain.Review{},
		},
	}

	jobs := []domain.Job{
		{
			ID:           "j1",
			FarmID:       "f1",
			Title:        "Organic Farm Hand",
			Type:         domain.JobFullTime,
			Description:  "Seeking a dedicated individual to assist with all aspects of our organic vegetable farm, including planting, weeding, harvesting, and packing. Must be physically fit and passionate about sustainable agriculture.",
			Requirements: []string{"Previous farming experience preferred", "Ability to lift 50 lbs", "Works well in a team", "Early morning availability"},
			Salary:       "$18 - $22/hour",
			Posted:       date("2023-11-01T09:00:00Z"),
			Applications: []string{"u3"},
		},
		{
			ID:           "j2",
			FarmID:       "f2",
			Title:        "Dairy Production Assistant",
			Type:         domain.JobPartTime,
			Description:  "Part-time position available to help with our cheese and yogurt production. Duties include assisting the cheesemaker, packaging products, and maintaining a clean production environment.",
			Requirements: []string{"Experience in food handling/production", "High attention to detail", "Knowledge of sanitation standards", "Weekend availability"},
			Salary:       "$20/hour",
			Posted:       date("2023-10-28T12:00:00Z"),
			Applications: []string{},
		},
	}

	return &domain.Snapshot{Users: users, Farms: farms, Jobs: jobs, CurrentUser: nil}
}

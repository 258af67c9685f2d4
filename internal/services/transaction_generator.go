package services

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"greenscore-api/internal/models"
)

const (
	generatedUserCount = 100
	minTxnsPerUser     = 10
	maxTxnsPerUser     = 20
	userSeedSpace      = 1000000
	avatarHueStep      = 37
	joinedDateSpanDays = 366
)

// baseDate anchors generated histories so the demo data never drifts.
var generatorBaseDate = models.NewDate(2026, time.January, 13)

// txnTemplate describes one generated transaction shape. Placeholders
// {month} and {dest} are filled per transaction.
type txnTemplate struct {
	desc      string
	category  string
	minAmount int
	maxAmount int
	impact    int
}

type transactionGenerator struct {
	templates    []txnTemplate
	firstNames   []string
	lastNames    []string
	months       []string
	destinations []string
	domains      []string
}

// NewTransactionGenerator creates a deterministic demo data generator. The
// same user ID always yields the same profile and history.
func NewTransactionGenerator() TransactionGeneratorInterface {
	return &transactionGenerator{
		templates:    initTxnTemplates(),
		firstNames:   initFirstNames(),
		lastNames:    initLastNames(),
		months:       initMonths(),
		destinations: initDestinations(),
		domains:      []string{"gmail.com", "outlook.com", "yahoo.com", "example.com"},
	}
}

// seedFor derives a stable per-user seed from the user ID
func seedFor(userID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(userID))
	return int64(h.Sum64() % userSeedSpace)
}

// GenerateUser builds the deterministic profile for the given user index
func (g *transactionGenerator) GenerateUser(index int) models.User {
	userID := fmt.Sprintf("USR%04d", index+1)
	rng := rand.New(rand.NewSource(seedFor(userID)))

	firstName := g.firstNames[index%len(g.firstNames)]
	lastName := g.lastNames[(index+rng.Intn(len(g.lastNames)))%len(g.lastNames)]

	return models.User{
		ID:          userID,
		FirstName:   firstName,
		LastName:    lastName,
		FullName:    firstName + " " + lastName,
		Email:       fmt.Sprintf("%s.%s%d@%s", strings.ToLower(firstName), strings.ToLower(lastName), index%100, g.domains[rng.Intn(len(g.domains))]),
		Phone:       fmt.Sprintf("+91 %d %d", 70000+rng.Intn(30000), 10000+rng.Intn(90000)),
		AvatarColor: fmt.Sprintf("hsl(%d, 70%%, 50%%)", (index*avatarHueStep)%360),
		JoinedDate:  models.NewDate(2025, time.January, 1).AddDays(rng.Intn(joinedDateSpanDays)),
	}
}

// GenerateTransactions builds the user's 10-20 transaction history. The
// per-user seed keeps repeat calls identical.
func (g *transactionGenerator) GenerateTransactions(user models.User) []models.Transaction {
	seed := seedFor(user.ID)
	rng := rand.New(rand.NewSource(seed))
	faker := gofakeit.New(uint64(seed))

	count := minTxnsPerUser + rng.Intn(maxTxnsPerUser-minTxnsPerUser+1)
	transactions := make([]models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		template := g.templates[rng.Intn(len(g.templates))]

		desc := template.desc
		desc = replacePlaceholder(desc, "{month}", g.months, rng)
		desc = replacePlaceholder(desc, "{dest}", g.destinations, rng)

		amount := float64(template.minAmount) + rng.Float64()*float64(template.maxAmount-template.minAmount)

		transactions = append(transactions, models.Transaction{
			ID:          models.FormatTransactionID(user.ID, i+1),
			UserID:      user.ID,
			Description: desc,
			Amount:      decimal.NewFromFloat(amount).Round(2),
			Category:    template.category,
			Merchant:    faker.Company(),
			Date:        generatorBaseDate.AddDays(-i * (1 + rng.Intn(3))),
			EcoImpact:   template.impact,
			Reasoning:   generatedReasoning(template.impact, template.category),
		})
	}

	return transactions
}

// TransactionCount reports how many transactions the user's seed produces
// without materializing them
func (g *transactionGenerator) TransactionCount(userID string) int {
	rng := rand.New(rand.NewSource(seedFor(userID)))
	return minTxnsPerUser + rng.Intn(maxTxnsPerUser-minTxnsPerUser+1)
}

// generatedReasoning maps an impact band to reasoning text
func generatedReasoning(impact int, category string) string {
	switch {
	case impact >= 4:
		return fmt.Sprintf("Excellent sustainability choice in %s! This significantly reduces your carbon footprint.", category)
	case impact >= 2:
		return fmt.Sprintf("Good eco-friendly decision. %s choices like this help the environment.", category)
	case impact >= 0:
		return fmt.Sprintf("Neutral environmental impact. Standard %s transaction.", category)
	case impact >= -2:
		return fmt.Sprintf("Moderate environmental concern. Consider greener %s alternatives.", category)
	default:
		return fmt.Sprintf("High environmental impact. Reducing such %s activities can improve your score.", category)
	}
}

func replacePlaceholder(desc, placeholder string, options []string, rng *rand.Rand) string {
	if !strings.Contains(desc, placeholder) {
		return desc
	}
	return strings.ReplaceAll(desc, placeholder, options[rng.Intn(len(options))])
}

// initTxnTemplates returns the 30 generation templates: 15 positive,
// 5 neutral, 10 negative
func initTxnTemplates() []txnTemplate {
	return []txnTemplate{
		// Positive impact
		{desc: "Metro Rail Pass - {month}", category: models.CategoryTransport, minAmount: 800, maxAmount: 2000, impact: 5},
		{desc: "Electric Scooter Charging", category: models.CategoryTransport, minAmount: 100, maxAmount: 500, impact: 4},
		{desc: "Organic Store Purchase", category: models.CategoryFood, minAmount: 500, maxAmount: 3000, impact: 3},
		{desc: "Solar Panel EMI", category: models.CategoryUtilities, minAmount: 5000, maxAmount: 12000, impact: 5},
		{desc: "Plant-Based Restaurant", category: models.CategoryFood, minAmount: 300, maxAmount: 1200, impact: 4},
		{desc: "Carpool Ride", category: models.CategoryTransport, minAmount: 100, maxAmount: 400, impact: 3},
		{desc: "Thrift Store Shopping", category: models.CategoryShopping, minAmount: 500, maxAmount: 2000, impact: 4},
		{desc: "Bicycle Accessories", category: models.CategoryTransport, minAmount: 200, maxAmount: 1500, impact: 4},
		{desc: "Tree Plantation Donation", category: models.CategoryDonations, minAmount: 500, maxAmount: 5000, impact: 5},
		{desc: "Eco-Friendly Products", category: models.CategoryShopping, minAmount: 300, maxAmount: 1500, impact: 3},
		{desc: "Local Farmers Market", category: models.CategoryFood, minAmount: 200, maxAmount: 800, impact: 3},
		{desc: "Digital Magazine Subscription", category: models.CategoryEntertainment, minAmount: 100, maxAmount: 500, impact: 2},
		{desc: "Reusable Products Store", category: models.CategoryShopping, minAmount: 400, maxAmount: 1200, impact: 3},
		{desc: "Public Bus Pass", category: models.CategoryTransport, minAmount: 500, maxAmount: 1500, impact: 4},
		{desc: "NGO Contribution", category: models.CategoryDonations, minAmount: 1000, maxAmount: 10000, impact: 5},

		// Neutral
		{desc: "Electricity Bill", category: models.CategoryUtilities, minAmount: 1500, maxAmount: 5000, impact: 0},
		{desc: "Mobile Recharge", category: models.CategoryUtilities, minAmount: 200, maxAmount: 1000, impact: 0},
		{desc: "Internet Bill", category: models.CategoryUtilities, minAmount: 500, maxAmount: 2000, impact: 0},
		{desc: "Water Bill", category: models.CategoryUtilities, minAmount: 200, maxAmount: 800, impact: 0},
		{desc: "Streaming Subscription", category: models.CategoryEntertainment, minAmount: 150, maxAmount: 800, impact: 1},

		// Negative impact
		{desc: "Petrol Fill-up", category: models.CategoryTransport, minAmount: 2000, maxAmount: 6000, impact: -4},
		{desc: "Flight Booking - {dest}", category: models.CategoryTransport, minAmount: 4000, maxAmount: 15000, impact: -5},
		{desc: "Fast Fashion Shopping", category: models.CategoryShopping, minAmount: 1500, maxAmount: 8000, impact: -4},
		{desc: "Plastic Bottled Water Case", category: models.CategoryFood, minAmount: 300, maxAmount: 1000, impact: -3},
		{desc: "Single-Use Disposables", category: models.CategoryShopping, minAmount: 200, maxAmount: 800, impact: -3},
		{desc: "Diesel Auto Fare", category: models.CategoryTransport, minAmount: 100, maxAmount: 500, impact: -2},
		{desc: "Imported Products", category: models.CategoryShopping, minAmount: 1000, maxAmount: 5000, impact: -2},
		{desc: "Meat Restaurant", category: models.CategoryFood, minAmount: 500, maxAmount: 2000, impact: -2},
		{desc: "Private Cab Ride", category: models.CategoryTransport, minAmount: 200, maxAmount: 1500, impact: -2},
		{desc: "AC Usage Bill (High)", category: models.CategoryUtilities, minAmount: 3000, maxAmount: 8000, impact: -2},
	}
}

func initFirstNames() []string {
	return []string{
		"Aarav", "Vivaan", "Aditya", "Vihaan", "Arjun", "Sai", "Reyansh", "Ayaan", "Krishna", "Ishaan",
		"Ananya", "Diya", "Saanvi", "Aanya", "Aadhya", "Isha", "Navya", "Aisha", "Pari", "Myra",
		"Rahul", "Amit", "Priya", "Neha", "Ravi", "Sunita", "Vikram", "Pooja", "Deepak", "Anjali",
		"Rohit", "Sanjay", "Sneha", "Kavita", "Manish", "Meera", "Rajesh", "Rekha", "Suresh", "Geeta",
		"Karan", "Nisha", "Arun", "Divya", "Varun", "Shruti", "Nikhil", "Ritika", "Siddharth", "Tanvi",
		"Akash", "Pallavi", "Gaurav", "Swati", "Harsh", "Komal", "Dev", "Ritu", "Jay", "Simran",
		"Aryan", "Kritika", "Yash", "Megha", "Kunal", "Preeti", "Sahil", "Aditi", "Mohit", "Shweta",
		"Rohan", "Kirti", "Vishal", "Sapna", "Abhishek", "Vrinda", "Tushar", "Rashi", "Pranav", "Nikita",
		"Dhruv", "Bhavna", "Kartik", "Shalini", "Ankit", "Tanya", "Mayank", "Rupal", "Shubham", "Vandana",
		"Aakash", "Hema", "Vivek", "Malika", "Raghav", "Jyoti", "Nakul", "Sonali", "Parth", "Kriti",
	}
}

func initLastNames() []string {
	return []string{
		"Sharma", "Verma", "Gupta", "Singh", "Kumar", "Patel", "Shah", "Joshi", "Mehta", "Chopra",
		"Reddy", "Nair", "Iyer", "Menon", "Pillai", "Rao", "Naidu", "Choudhury", "Das", "Bose",
		"Banerjee", "Mukherjee", "Chatterjee", "Sen", "Roy", "Dutta", "Ghosh", "Sinha", "Mishra", "Pandey",
		"Tiwari", "Dubey", "Saxena", "Agarwal", "Jain", "Goyal", "Mittal", "Kapoor", "Khanna", "Malhotra",
		"Arora", "Bhatia", "Sethi", "Kohli", "Dhawan", "Bajaj", "Ahuja", "Oberoi", "Mehra", "Tandon",
	}
}

func initMonths() []string {
	return []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
}

func initDestinations() []string {
	return []string{
		"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata",
		"Hyderabad", "Pune", "Goa", "Jaipur", "Kochi",
	}
}

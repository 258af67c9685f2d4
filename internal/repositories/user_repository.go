package repositories

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"greenscore-api/internal/models"
	"greenscore-api/internal/services"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidUserID = errors.New("invalid user ID format")
)

var userIDPattern = regexp.MustCompile(`^USR\d{4}$`)

// userRepository serves generated demo users from memory. Profiles are
// materialized at construction; transaction histories are generated lazily
// and cached since each is deterministic.
type userRepository struct {
	generator services.TransactionGeneratorInterface
	users     []models.User
	byID      map[string]int

	mu       sync.Mutex
	txnCache map[string][]models.Transaction
}

// NewUserRepository builds the demo user base from the generator
func NewUserRepository(generator services.TransactionGeneratorInterface, userCount int) UserRepositoryInterface {
	users := make([]models.User, 0, userCount)
	byID := make(map[string]int, userCount)
	for i := 0; i < userCount; i++ {
		user := generator.GenerateUser(i)
		byID[user.ID] = i
		users = append(users, user)
	}
	return &userRepository{
		generator: generator,
		users:     users,
		byID:      byID,
		txnCache:  make(map[string][]models.Transaction),
	}
}

// GetAll returns every demo user ordered by ID
func (r *userRepository) GetAll() []models.User {
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out
}

// GetByID retrieves a user by ID. Malformed IDs are reported separately
// from unknown ones.
func (r *userRepository) GetByID(id string) (*models.User, error) {
	if !userIDPattern.MatchString(id) {
		return nil, ErrInvalidUserID
	}
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	user := r.users[i]
	return &user, nil
}

// Search matches the query against name, email and user ID, case-insensitively
func (r *userRepository) Search(query string) []models.User {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return r.GetAll()
	}

	var out []models.User
	for _, user := range r.users {
		haystack := strings.ToLower(user.FullName + " " + user.Email + " " + user.ID)
		if strings.Contains(haystack, needle) {
			out = append(out, user)
		}
	}
	return out
}

// GetTransactions returns the user's generated history, caching it after
// the first call
func (r *userRepository) GetTransactions(userID string) ([]models.Transaction, error) {
	user, err := r.GetByID(userID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.txnCache[userID]; ok {
		out := make([]models.Transaction, len(cached))
		copy(out, cached)
		return out, nil
	}

	txns := r.generator.GenerateTransactions(*user)
	r.txnCache[userID] = txns

	out := make([]models.Transaction, len(txns))
	copy(out, txns)
	return out, nil
}

// Count reports the number of demo users
func (r *userRepository) Count() int {
	return len(r.users)
}

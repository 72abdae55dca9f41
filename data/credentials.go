package data

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/hikegear/storefront/models"
)

// DemoPassword is the literal accepted for every seeded identity. The
// allow-list is a demo fixture, not a credential store.
const DemoPassword = "password"

// AllowList verifies credentials against a fixed set of demo identities.
// It implements services.CredentialVerifier.
type AllowList struct {
	mu     sync.RWMutex
	users  map[string]models.User // keyed by email
	hashes map[string][]byte      // keyed by email
}

// SeedAllowList builds the two-identity fixture of the demo storefront.
// Hashes are generated at startup; MinCost keeps fixture setup cheap.
func SeedAllowList() *AllowList {
	al := &AllowList{
		users:  make(map[string]models.User),
		hashes: make(map[string][]byte),
	}
	seed := []models.User{
		{ID: "1", Name: "John Doe", Email: "user@test.com", Role: models.RoleCustomer},
		{ID: "2", Name: "Admin User", Email: "admin@test.com", Role: models.RoleAdmin},
	}
	for _, u := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		al.users[u.Email] = u
		al.hashes[u.Email] = hash
	}
	return al
}

// Verify returns the matching identity when the email is on the allow-list
// and the password matches its hash. Unknown email and wrong password are
// indistinguishable to the caller.
func (al *AllowList) Verify(email, password string) (*models.User, bool) {
	al.mu.RLock()
	defer al.mu.RUnlock()

	user, ok := al.users[email]
	if !ok {
		return nil, false
	}
	if err := bcrypt.CompareHashAndPassword(al.hashes[email], []byte(password)); err != nil {
		return nil, false
	}
	u := user
	return &u, true
}

package clean

import (
	"sync"

	"github.com/brianvoe/gofakeit/v6"
)

// PasswordLength is the length of generated placeholder passwords.
const PasswordLength = 8

// PasswordGenerator produces placeholder passwords for parents without one.
type PasswordGenerator interface {
	Generate() string
}

// FakerPasswords generates alphanumeric passwords (upper, lower and digits)
// with gofakeit. The output only satisfies a non-null constraint
// downstream; it is not a credential. It is safe for concurrent use.
type FakerPasswords struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// NewFakerPasswords returns a generator. A zero seed draws a random one,
// any other seed makes the sequence reproducible.
func NewFakerPasswords(seed int64) *FakerPasswords {
	return &FakerPasswords{faker: gofakeit.New(seed)}
}

// Generate implements PasswordGenerator.
func (g *FakerPasswords) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.faker.Password(true, true, true, false, false, PasswordLength)
}

package cryptography

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/MGTheTrain/text-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// Character classes. Look-alikes (I, o, 0) are left out.
const (
	upperChars  = "ABCDEFGHJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnpqrstuvwxyz"
	numberChars = "123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?/"
)

// ErrNoCharacterClass is returned when every character class is disabled.
var ErrNoCharacterClass = errors.New("at least one character class must be enabled")

type passwordGenerator struct {
	rand     io.Reader
	validate *validator.Validate
	logger   logger.Logger
}

// NewPasswordGenerator creates a PasswordGenerator drawing from crypto/rand unless
// WithRandReader says otherwise.
func NewPasswordGenerator(logger logger.Logger, opts ...Option) (cryptoalg.PasswordGenerator, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &passwordGenerator{
		rand:     applyOptions(opts).rand,
		validate: validator.New(),
		logger:   logger,
	}, nil
}

// Generate builds a password containing at least one character of every enabled class.
func (g *passwordGenerator) Generate(opts cryptoalg.PasswordOptions) (string, error) {
	if err := g.validate.Struct(opts); err != nil {
		return "", fmt.Errorf("invalid password options: %w", err)
	}

	classes := enabledClasses(opts)
	if len(classes) == 0 {
		return "", ErrNoCharacterClass
	}
	if opts.Length < len(classes) {
		return "", fmt.Errorf("password length %d cannot hold %d character classes", opts.Length, len(classes))
	}

	out := make([]byte, 0, opts.Length)
	for _, class := range classes {
		c, err := g.pick(class)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	all := strings.Join(classes, "")
	for len(out) < opts.Length {
		c, err := g.pick(all)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	if err := g.shuffle(out); err != nil {
		return "", err
	}

	g.logger.Debug("Generated password of length ", opts.Length)
	return string(out), nil
}

func enabledClasses(opts cryptoalg.PasswordOptions) []string {
	var classes []string
	if opts.Upper {
		classes = append(classes, upperChars)
	}
	if opts.Lower {
		classes = append(classes, lowerChars)
	}
	if opts.Number {
		classes = append(classes, numberChars)
	}
	if opts.Symbol {
		classes = append(classes, symbolChars)
	}
	return classes
}

func (g *passwordGenerator) pick(alphabet string) (byte, error) {
	i, err := g.uniform(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

// shuffle is a Fisher-Yates shuffle driven by the generator's reader.
func (g *passwordGenerator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.uniform(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// uniform returns an unbiased integer in [0, n) using rejection sampling over single bytes.
func (g *passwordGenerator) uniform(n int) (int, error) {
	if n <= 0 || n > math.MaxUint8+1 {
		return 0, fmt.Errorf("range %d out of bounds", n)
	}

	limit := (math.MaxUint8 + 1) - (math.MaxUint8+1)%n
	var b [1]byte
	for {
		if _, err := io.ReadFull(g.rand, b[:]); err != nil {
			return 0, fmt.Errorf("failed to read random bytes: %w", err)
		}
		if int(b[0]) < limit {
			return int(b[0]) % n, nil
		}
	}
}

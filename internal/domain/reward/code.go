package reward

import (
	"errors"
	"strings"

	"github.com/segmentio/ksuid"
)

var ErrInvalidCode = errors.New("invalid redemption code")

const (
	codePrefix = "RW"
	codeGroup  = 4
	// no 0/O, 1/I; 32 symbols so byte%32 stays uniform
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Code is a customer-facing redemption code such as RW-7KQ2-MX4D.
type Code string

func (c Code) String() string {
	return string(c)
}

// ParseCode normalizes user input (case, surrounding space) and checks the shape.
func ParseCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	parts := strings.Split(s, "-")
	if len(parts) < 2 || parts[0] != codePrefix {
		return "", ErrInvalidCode
	}
	for _, p := range parts[1:] {
		if p == "" || len(p) > codeGroup {
			return "", ErrInvalidCode
		}
		for _, r := range p {
			if !strings.ContainsRune(codeAlphabet, r) {
				return "", ErrInvalidCode
			}
		}
	}
	return Code(s), nil
}

type CodeGenerator interface {
	Generate() (Code, error)
}

// KSUIDCodeGenerator draws code symbols from the random payload of fresh KSUIDs.
type KSUIDCodeGenerator struct {
	length int
}

func NewKSUIDCodeGenerator(length int) *KSUIDCodeGenerator {
	if length < codeGroup {
		length = codeGroup
	}
	return &KSUIDCodeGenerator{length: length}
}

func (g *KSUIDCodeGenerator) Generate() (Code, error) {
	symbols := make([]byte, 0, g.length)
	for len(symbols) < g.length {
		id, err := ksuid.NewRandom()
		if err != nil {
			return "", err
		}
		for _, b := range id.Payload() {
			if len(symbols) == g.length {
				break
			}
			symbols = append(symbols, codeAlphabet[int(b)%len(codeAlphabet)])
		}
	}

	var sb strings.Builder
	sb.WriteString(codePrefix)
	for i, s := range symbols {
		if i%codeGroup == 0 {
			sb.WriteByte('-')
		}
		sb.WriteByte(s)
	}
	return Code(sb.String()), nil
}

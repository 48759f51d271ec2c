package ctrl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"html"
	"math/big"
	"strings"

	"github.com/JMURv/zedasignal/internal/config"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "NG"

var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

// plainText strips markup and keeps the text unescaped; templates escape on render.
func plainText(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

func newVerificationCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < config.VerificationCodeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", config.VerificationCodeLength, n), nil
}

func newResetKey() (string, error) {
	b := make([]byte, config.ResetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// normalizePhone formats phone as E.164. Numbers without a country code are
// read as Nigerian.
func normalizePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", nil
	}

	num, err := phonenumbers.Parse(phone, defaultRegion)
	if err != nil || !phonenumbers.IsPossibleNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func splitFullName(full string) (string, string) {
	first, last, _ := strings.Cut(strings.TrimSpace(full), " ")
	return first, strings.TrimSpace(last)
}

// detach keeps values of ctx for work that outlives the request.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

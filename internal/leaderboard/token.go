package leaderboard

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Jomszxcvb/BootlegHangaroo/internal/game"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/words"
)

// tokenTTL bounds how long a signed score stays redeemable.
const tokenTTL = 10 * time.Minute

// scoreClaims is the JWT payload for one finished run.
type scoreClaims struct {
	Score      int    `json:"score"`
	Difficulty string `json:"difficulty"`
	Mode       string `json:"mode"`
	jwt.RegisteredClaims
}

// SignScore issues an HS256 token carrying e. The player name travels as
// the subject. Whoever holds secret can sign any score, so the token only
// protects the entry in transit.
func SignScore(e Entry, secret []byte) (string, error) {
	e, err := normalize(e)
	if err != nil {
		return "", err
	}
	claims := scoreClaims{
		Score:      e.Score,
		Difficulty: e.Difficulty.String(),
		Mode:       string(e.Mode),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   e.Name,
			IssuedAt:  jwt.NewNumericDate(e.RecordedAt),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyScore checks the signature and expiry of a score token and returns
// the entry it carries.
func VerifyScore(tokenStr string, secret []byte) (Entry, error) {
	var claims scoreClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Entry{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	d, err := words.ParseDifficulty(claims.Difficulty)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	mode, err := game.ParseMode(claims.Mode)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	e := Entry{
		Name:       claims.Subject,
		Score:      claims.Score,
		Difficulty: d,
		Mode:       mode,
	}
	if claims.IssuedAt != nil {
		e.RecordedAt = claims.IssuedAt.Time.UTC()
	}
	return normalize(e)
}

package helper

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"oneclickticket/config"
	"oneclickticket/database"
	"oneclickticket/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByUsername(u string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Username: u}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (model.TokenData, error) {
	now := Now()
	expiresAt := now.Add(config.ConfigDuration("JWT_TTL", time.Hour))

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["jti"] = uuid.NewString()
	claims["sub"] = strconv.FormatUint(uint64(tokenClaim.AccountId), 10)
	claims["accountId"] = tokenClaim.AccountId
	claims["username"] = tokenClaim.Username
	claims["role"] = tokenClaim.Role
	claims["iat"] = now.Unix()
	claims["exp"] = expiresAt.Unix()

	t, err := token.SignedString(jwtSecret())
	if err != nil {
		return model.TokenData{}, err
	}
	return model.TokenData{AccessToken: t, ExpiresAt: expiresAt.Unix()}, nil
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	}, jwt.WithTimeFunc(Now), jwt.WithExpirationRequired())
}

// ClaimFromToken reads the account claims of a parsed token.
func ClaimFromToken(token *jwt.Token) (model.TokenClaim, bool) {
	if token == nil {
		return model.TokenClaim{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false
	}
	accountId, _ := claims["accountId"].(float64)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if accountId == 0 {
		return model.TokenClaim{}, false
	}
	return model.TokenClaim{AccountId: uint(accountId), Username: username, Role: role}, true
}

// GetInfoAccountFromToken returns the claims stored by middleware.Protected.
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	token, _ := c.Locals("user").(*jwt.Token)
	return ClaimFromToken(token)
}

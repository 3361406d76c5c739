package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"schoolku_backend/internals/configs"
	userModel "schoolku_backend/internals/features/users/user/model"
)

const accessTTLDefault = 24 * time.Hour

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

// CreateAccessToken membuat JWT dengan klaim user_id, role, dan (kalau ada)
// teacher_id — klaim yang dibaca auth middleware ke fiber Locals.
func CreateAccessToken(user *userModel.UserModel, teacherID *uuid.UUID) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"role":    user.PrimaryRole(),
		"iat":     now.Unix(),
		"exp":     now.Add(accessTTLDefault).Unix(),
	}
	if teacherID != nil && *teacherID != uuid.Nil {
		claims["teacher_id"] = teacherID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menandatangani token")
	}
	return signed, nil
}

package helpers

import (
	"context"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
)

func UserIDFromContext(ctx context.Context) string {
	userID, ok := ctx.Value(ContextKeyUserID).(string)
	if !ok {
		return ""
	}
	return userID
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}

// NewValidator builds the shared validator instance. Field names in
// error messages use the json tag so clients see the wire name.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Decimals validate as their float value, so "required" rejects
	// both an absent price and an explicit zero.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return validate
}

// FirstValidationError reports the first failing field in struct
// declaration order. Validation is first-failure-wins: the response
// names exactly one field, never an aggregate.
func FirstValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "invalid request"
	}

	first := validationErrors[0]
	switch first.Tag() {
	case "required", "min":
		return fmt.Sprintf("%s is required", first.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", first.Field())
	default:
		return fmt.Sprintf("%s is invalid", first.Field())
	}
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {
		return false
	}
	return true
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}

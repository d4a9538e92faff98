package configs

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"

	"github.com/gorilla/securecookie"
)

type SessionKeys struct {
	AuthKey []byte
	EncKey  []byte
}

func LoadSessionKeysFromEnv(env ENV) (*SessionKeys, error) {
	if env.AppAuthKey == "" {
		return nil, fmt.Errorf("APP_AUTH_KEY environment variable not set")
	}
	if env.AppEncKey == "" {
		return nil, fmt.Errorf("APP_ENC_KEY environment variable not set")
	}

	authKey, err := base64.URLEncoding.DecodeString(env.AppAuthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode APP_AUTH_KEY from Base64: %w", err)
	}
	encKey, err := base64.URLEncoding.DecodeString(env.AppEncKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode APP_ENC_KEY from Base64: %w", err)
	}

	if len(encKey) != 16 && len(encKey) != 24 && len(encKey) != 32 {
		return nil, fmt.Errorf("APP_ENC_KEY has invalid length %d after decoding. Must be 16, 24, or 32 bytes for AES encryption", len(encKey))
	}

	log.Println("✅ Session keys loaded and decoded successfully.")
	return &SessionKeys{
		AuthKey: authKey,
		EncKey:  encKey,
	}, nil
}

func GenerateAndPrintSessionKeys() error {
	fmt.Println("Generating new session keys...")

	authKey := securecookie.GenerateRandomKey(64)
	if authKey == nil {
		return fmt.Errorf("error: could not generate authentication key")
	}

	encKey := securecookie.GenerateRandomKey(32)
	if encKey == nil {
		return fmt.Errorf("error: could not generate encryption key")
	}

	authKeyBase64 := base64.URLEncoding.EncodeToString(authKey)
	encKeyBase64 := base64.URLEncoding.EncodeToString(encKey)

	fmt.Println("\n================================================")
	fmt.Println("Generated keys:")
	fmt.Printf("APP_AUTH_KEY=%s\n", authKeyBase64)
	fmt.Printf("APP_ENC_KEY=%s\n", encKeyBase64)
	fmt.Println("================================================")

	envFilePath := ".env.new_keys"
	file, err := os.Create(envFilePath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", envFilePath, err)
	}
	defer file.Close()

	_, err = fmt.Fprintf(file, "APP_AUTH_KEY=%s\nAPP_ENC_KEY=%s\n", authKeyBase64, encKeyBase64)
	if err != nil {
		return fmt.Errorf("failed to write keys to file %s: %w", envFilePath, err)
	}

	fmt.Printf("\n✅ Keys have been written to '%s'.\n", envFilePath)
	fmt.Println("Please copy these lines from that file into your actual .env file.")
	fmt.Println("REMINDER: regenerating keys will invalidate existing sessions.")

	return nil
}

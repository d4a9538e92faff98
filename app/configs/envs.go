package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBPort            string
	Port              string
	AppEnv            string
	AppAuthKey        string
	AppEncKey         string
	CSRFKey           string
	RedisAddr         string
	RedisPassword     string
	CloudinaryURL     string
	MidtransServerKey string
	MidtransClientKey string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		Port:              os.Getenv("APP_PORT"),
		AppEnv:            os.Getenv("APP_ENV"),
		AppAuthKey:        os.Getenv("APP_AUTH_KEY"),
		AppEncKey:         os.Getenv("APP_ENC_KEY"),
		CSRFKey:           os.Getenv("CSRF_KEY"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		CloudinaryURL:     os.Getenv("CLOUDINARY_URL"),
		MidtransServerKey: os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransClientKey: os.Getenv("MIDTRANS_CLIENT_KEY"),
	}

}

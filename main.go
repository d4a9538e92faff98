package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/csrf"
	"github.com/gostore/admin/app/cmd"
	"github.com/gostore/admin/app/configs"
	"github.com/gostore/admin/app/routes"
	"github.com/gostore/admin/app/utils/sessions"
)

func main() {
	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli(env)
		return
	}

	db, err := configs.OpenConnection(env)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	keys, err := configs.LoadSessionKeysFromEnv(env)
	if err != nil {
		log.Fatal("Session keys failed:", err)
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	log.Println("✅ Session store initialized.")

	redisClient, err := configs.OpenRedis(env)
	if err != nil {
		log.Println("⚠️ Redis unavailable, product caching disabled:", err)
	}

	cld, err := configs.OpenCloudinary(env)
	if err != nil {
		log.Println("⚠️ Cloudinary unavailable, uploads disabled:", err)
	}

	snapClient := configs.NewMidtransClient(env)
	if snapClient == nil {
		log.Println("⚠️ Midtrans not configured, checkout runs without payment links.")
	}

	router := routes.NewRouter(routes.Deps{
		DB:           db,
		SessionStore: sessionStore,
		RedisClient:  redisClient,
		Cloudinary:   cld,
		SnapClient:   snapClient,
	})

	var handler http.Handler = router
	if env.AppEnv == "production" {
		handler = csrf.Protect([]byte(env.CSRFKey), csrf.Secure(true))(router)
		log.Println("✅ CSRF protection enabled.")
	}

	server := http.Server{
		Addr:    env.Port,
		Handler: handler,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped:", err)
	}
}

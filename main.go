package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "KINTAI-backend/docs"
	"KINTAI-backend/internal/attendance"
	"KINTAI-backend/internal/employees"
	"KINTAI-backend/internal/leaves"
	"KINTAI-backend/internal/platform/auth"
	"KINTAI-backend/internal/platform/db"
)

// @title					KINTAI API
// @version					1.0
// @description				勤怠・休暇管理バックエンド
// @BasePath				/api
// @securityDefinitions.apikey	BearerAuth
// @in						header
// @name						Authorization

func main() {
	// .env（あれば）→ 設定ファイル → 環境変数の順で読み込み
	_ = godotenv.Load()

	cfg, err := db.LoadConfig("config/config.yaml")
	if err != nil {
		panic(err)
	}

	mode := cfg.Mode
	log.Printf("[INFO] mode:%s\n", mode)

	if mode != "dev" && mode != "release" {
		fmt.Println("Usage: go run main.go [dev|release]")
		return
	}

	if cfg.Auth.SecretKey == db.InsecureDefaultSecret {
		log.Printf("[WARN] SECRET_KEY is unset, using the insecure default. Do not run release mode like this.")
	}

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	log.Printf("[INFO] connected to DB: %s", cfg.DB.DBName)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if mode == "dev" {
		// CORS（開発中のみ必要）
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
	}

	// ヘルス
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	tokens := auth.NewTokenService([]byte(cfg.Auth.SecretKey), cfg.Auth.TokenTTL())
	authSvc := auth.NewService(conn, tokens)
	requireAuth := auth.RequireAuth(authSvc)
	requireAdmin := auth.RequireRole(auth.RoleAdmin)

	// /api
	api := r.Group("/api")
	auth.RegisterRoutes(api.Group("/auth"), authSvc)

	attendance.RegisterRoutes(api.Group("/attendance", requireAuth), attendance.NewService(conn), requireAdmin)
	leaves.RegisterRoutes(api.Group("/leaves", requireAuth), leaves.NewService(conn), requireAdmin)
	employees.RegisterRoutes(api.Group("/users", requireAuth, requireAdmin), employees.NewService(conn))

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: r,
	}

	go func() {
		log.Printf("[INFO] listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("[INFO] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}

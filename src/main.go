package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"

	_ "Backend-Yeoun-Survey/docs"
	"Backend-Yeoun-Survey/src/config"
	"Backend-Yeoun-Survey/src/controllers"
	"Backend-Yeoun-Survey/src/database"
	"Backend-Yeoun-Survey/src/events"
	"Backend-Yeoun-Survey/src/i18n"
	"Backend-Yeoun-Survey/src/jobs"
	"Backend-Yeoun-Survey/src/middleware"
	"Backend-Yeoun-Survey/src/routes"
	"Backend-Yeoun-Survey/src/services/admin"
	"Backend-Yeoun-Survey/src/services/auth"
	"Backend-Yeoun-Survey/src/services/submission"
	"Backend-Yeoun-Survey/src/services/survey"
	"Backend-Yeoun-Survey/src/services/users"
	"Backend-Yeoun-Survey/src/utils"
)

// @title        Yeoun Survey API
// @version      1.0
// @description  Performance survey backend: Kakao login, survey wizard, admin results and schedule.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	i18n.SetDefault(cfg.DefaultLocale)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// เชื่อมต่อกับ MongoDB
	db, err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis เป็น optional ใน dev mode
	redisClient := database.InitRedis(cfg.RedisURI)
	asynqClient := database.InitAsynq(cfg.RedisURI, redisClient != nil)
	publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)

	drafts, mirror, reportCache, codeGuard, states := stores(redisClient)

	usersSvc := users.NewService(users.NewMongoRepository(db), publisher)
	responseStore := submission.NewMongoStore(db)
	adminSvc := admin.NewService(responseStore, reportCache)
	submissionSvc := submission.NewService(responseStore, mirror, publisher, jobs.NewScheduler(asynqClient, adminSvc))
	surveySvc := survey.NewService(drafts, submissionSvc, submissionSvc)

	issuer := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	sessions := utils.NewSessionStore(redisClient)
	kakao := auth.NewKakaoClient(auth.KakaoConfig{
		ClientID:     cfg.KakaoClientID,
		ClientSecret: cfg.KakaoClientSecret,
		RedirectURI:  cfg.KakaoRedirectURI,
	})
	authSvc := auth.NewService(kakao, codeGuard, states, usersSvc, issuer, sessions)

	if asynqClient != nil {
		if err := jobs.StartWorker(ctx, cfg.RedisURI, adminSvc); err != nil {
			log.Println("⚠️ Asynq worker not started:", err)
		}
	}

	// สร้าง app instance
	app := fiber.New(fiber.Config{AppName: "yeoun-survey"})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Accept-Language, Authorization",
		AllowCredentials: false, // ต้องเป็น false ถ้าใช้ "*"
	}))
	app.Use(middleware.Locale())

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	deps := routes.NewDeps(
		controllers.NewAuthController(authSvc, !cfg.IsProduction()),
		controllers.NewSurveyController(surveySvc, submissionSvc),
		controllers.NewAdminController(adminSvc, usersSvc, authSvc),
		middleware.AuthJWT(issuer, sessions),
		usersSvc.Get,
	)
	routes.InitRoutes(app, deps)

	go func() {
		log.Println("Server is running on port " + cfg.AppURI)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.AppURI)); err != nil {
			log.Println("❌ Server stopped:", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("🔄 Shutting down...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Println("⚠️ Fiber shutdown:", err)
	}
	if asynqClient != nil {
		_ = asynqClient.Close()
	}
	if err := publisher.Close(); err != nil {
		log.Println("⚠️ Kafka close:", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.DisconnectMongoDB(shutdownCtx); err != nil {
		log.Println("⚠️ MongoDB disconnect:", err)
	}
}

// stores picks Redis-backed implementations when Redis is up and in-memory
// ones otherwise.
func stores(client *redis.Client) (survey.DraftStore, submission.Mirror, admin.ReportCache, auth.CodeGuard, auth.StateStore) {
	if client == nil {
		log.Println("⚠️ Using in-memory drafts, cache and OAuth guards")
		return survey.NewMemoryDraftStore(), submission.NewMemoryMirror(), admin.NewMemoryReportCache(), auth.NewMemoryCodeGuard(), auth.NewMemoryStateStore()
	}
	return survey.NewRedisDraftStore(client), submission.NewRedisMirror(client), admin.NewRedisReportCache(client), auth.NewRedisCodeGuard(client), auth.NewRedisStateStore(client)
}

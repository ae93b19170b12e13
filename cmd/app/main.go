package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"insura/cmd/fx/account_fx"
	"insura/cmd/fx/catalog_fx"
	"insura/cmd/fx/chatbot_fx"
	"insura/cmd/fx/claim_fx"
	"insura/cmd/fx/db_fx"
	"insura/cmd/fx/message_fx"
	"insura/cmd/fx/subscription_fx"
	"insura/cmd/fx/transaction_fx"
	"insura/internal/api/controllers"
	"insura/internal/models/db_models"
	mem "insura/pkg/memcache"
	"insura/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		subscription_fx.Module,
		claim_fx.Module,
		transaction_fx.Module,
		message_fx.Module,
		chatbot_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	denylist mem.TokenDenylist,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	subscriptionController *controllers.SubscriptionController,
	claimController *controllers.ClaimController,
	transactionController *controllers.TransactionController,
	messageController *controllers.MessageController,
	chatbotController *controllers.ChatbotController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, denylist,
		accountController, catalogController, subscriptionController,
		claimController, transactionController, messageController, chatbotController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	denylist mem.TokenDenylist,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	subscriptionController *controllers.SubscriptionController,
	claimController *controllers.ClaimController,
	transactionController *controllers.TransactionController,
	messageController *controllers.MessageController,
	chatbotController *controllers.ChatbotController) {

	// Public endpoints
	r.POST("/register", accountController.Register)
	r.POST("/login", accountController.Login)
	r.GET("/categories", catalogController.ListCategories)
	r.GET("/policies", catalogController.ListPolicies)
	r.GET("/policies/:id", catalogController.GetPolicyByID)
	r.POST("/chatbot-interaction", chatbotController.Interact)

	// Authenticated endpoints
	auth := r.Group("/", middleware.JWTAuthMiddleware(denylist))
	auth.POST("/logout", accountController.Logout)
	auth.POST("/join-policy", subscriptionController.JoinPolicy)
	auth.GET("/my-policies", subscriptionController.MyPolicies)
	auth.POST("/submit-claim", claimController.SubmitClaim)
	auth.GET("/claims", claimController.ListMyClaims)
	auth.GET("/claim-timeline/:id", claimController.ClaimTimeline)
	auth.GET("/recent-transactions", transactionController.RecentTransactions)
	auth.GET("/dashboard/summary", transactionController.DashboardSummary)
	auth.POST("/messages", messageController.Send)
	auth.GET("/messages", messageController.Inbox)

	// Insurer-only endpoints
	insurer := auth.Group("/", middleware.RoleMiddleware(db_models.RoleInsurer))
	insurer.GET("/all-claims", claimController.ListAllClaims)
	insurer.POST("/process-claim/:id", claimController.ProcessClaim)
}

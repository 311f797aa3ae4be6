package server

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"medibill-api/internal/audit"
	"medibill-api/internal/db"
	"medibill-api/internal/handlers"
	"medibill-api/internal/logger"
	"medibill-api/internal/pdf"
	"medibill-api/internal/services"
)

// Handler Definitions
var (
	patientHandler *handlers.PatientHandler
	invoiceHandler *handlers.InvoiceHandler
	paymentHandler *handlers.PaymentHandler

	auditSink audit.Sink
	store     db.Store
)

// InitializeHandlers connects to the database, runs migrations, selects the
// audit sink, and wires every handler. Fatal on any missing dependency.
func InitializeHandlers() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	connPool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	if err := db.Migrate(context.Background(), connPool); err != nil {
		logger.Fatal("Unable to run database migrations", zap.Error(err))
	}

	store = db.NewStore(connPool)
	auditSink = newAuditSink()

	patientService := services.NewPatientService(store)
	invoiceService := services.NewInvoiceService(store, auditSink)
	paymentService := services.NewPaymentService(store, auditSink)
	renderer := pdf.NewRenderer(os.Getenv("HOSPITAL_NAME"))

	patientHandler = handlers.NewPatientHandler(patientService)
	invoiceHandler = handlers.NewInvoiceHandler(invoiceService, patientService, renderer)
	paymentHandler = handlers.NewPaymentHandler(paymentService)
}

// newAuditSink publishes financial events to Kafka when a broker is
// configured, and to the service log otherwise.
func newAuditSink() audit.Sink {
	broker := os.Getenv("AUDIT_KAFKA_BROKER")
	if broker == "" {
		logger.Info("Audit events will be written to the service log")
		return audit.NewLogSink(logger.Log)
	}

	topic := os.Getenv("AUDIT_KAFKA_TOPIC")
	if topic == "" {
		topic = "billing.audit"
	}

	logger.Info("Audit events will be published to Kafka",
		zap.String("broker", broker),
		zap.String("topic", topic))
	return audit.NewKafkaSink(broker, topic)
}

// Shutdown releases resources held by the handler graph.
func Shutdown() {
	if auditSink != nil {
		if err := auditSink.Close(); err != nil {
			logger.Error("Failed to close audit sink", zap.Error(err))
		}
	}
}

// InitializeRoutes registers middleware and the API surface on the router.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(handlers.LogRequest())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Patients
		v1.GET("/patients", patientHandler.ListPatients)
		v1.POST("/patients", patientHandler.CreatePatient)
		v1.GET("/patients/:patient_id", patientHandler.GetPatient)

		// Invoices
		invoices := v1.Group("/invoices")
		{
			invoices.GET("", invoiceHandler.ListInvoices)
			invoices.POST("", invoiceHandler.CreateInvoice)
			invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
			invoices.PATCH("/:invoice_id", invoiceHandler.UpdateInvoice)
			invoices.POST("/:invoice_id/cancel", invoiceHandler.CancelInvoice)
			invoices.POST("/:invoice_id/refund", invoiceHandler.RefundInvoice)
			invoices.GET("/:invoice_id/pdf", invoiceHandler.DownloadInvoicePDF)

			// Payment ledger
			invoices.GET("/:invoice_id/payments", paymentHandler.ListPayments)
			invoices.POST("/:invoice_id/payments", paymentHandler.AddPayment)
		}
	}
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Actor-ID"}

	return cors.New(corsConfig)
}

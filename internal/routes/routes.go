package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barblab-api/internal/audit"
	"github.com/BruksfildServices01/barblab-api/internal/config"
	"github.com/BruksfildServices01/barblab-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barblab-api/internal/infra/repository"
	"github.com/BruksfildServices01/barblab-api/internal/middleware"
	"github.com/BruksfildServices01/barblab-api/internal/session"
	"github.com/BruksfildServices01/barblab-api/internal/sms"
	ucAuth "github.com/BruksfildServices01/barblab-api/internal/usecase/auth"
	ucBooking "github.com/BruksfildServices01/barblab-api/internal/usecase/booking"
	ucDirectory "github.com/BruksfildServices01/barblab-api/internal/usecase/directory"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, store session.Store, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Sessions(store, cfg.SessionSecret))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifier := sms.NewNotifier(db, clientRepo)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	registerUC := ucDirectory.NewRegister(clientRepo, auditDispatcher)
	getSelfUC := ucDirectory.NewGetSelf(clientRepo)

	loginClientUC := ucAuth.NewLoginClient(clientRepo)
	loginAdminUC := ucAuth.NewLoginAdmin(clientRepo)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(store, registerUC, loginClientUC, getSelfUC)
	bookingHandler := handlers.NewBookingHandler(createAppointmentUC)

	adminHandler := handlers.NewAdminHandler(clientRepo, appointmentRepo, notifier, auditDispatcher)
	adminWebHandler := handlers.NewAdminWebHandler(store, loginAdminUC)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	smsLogsHandler := handlers.NewSMSLogsHandler(db)

	webHandler := handlers.NewWebHandler()

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	r.GET("/", webHandler.Index)
	r.GET("/cadastro", webHandler.Register)
	r.GET("/login", webHandler.Login)
	r.GET("/agendamento", webHandler.Booking)
	r.GET("/sucesso", webHandler.Success)

	r.GET("/admin-login", adminWebHandler.LoginPage)
	r.POST("/admin-login", adminWebHandler.Login)
	r.GET("/admin", adminWebHandler.Panel)
	r.GET("/admin-logout", adminWebHandler.Logout)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (cliente)
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/me", authHandler.Me)

		// ------------------------------
		// 🔐 CLIENTE AUTENTICADO
		// ------------------------------
		client := api.Group("/")
		client.Use(middleware.RequireClient())
		{
			client.POST("/agendar", bookingHandler.Create)
		}

		// ------------------------------
		// 🔐 PAINEL ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/clients", adminHandler.ListClients)
			admin.GET("/agendamentos", adminHandler.ListAppointments)

			admin.DELETE("/client/:id", adminHandler.DeleteClient)
			admin.DELETE("/agendamento/:id", adminHandler.DeleteAppointment)

			admin.GET("/export_csv", adminHandler.ExportClientsCSV)

			admin.POST("/client/:id/sms", adminHandler.SendSMS)
			admin.GET("/sms-logs", smsLogsHandler.List)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

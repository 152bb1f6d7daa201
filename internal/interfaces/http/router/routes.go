package router

import (
	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/interfaces/http/handler"
	"github.com/erp/erp-system/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted under the API prefix
type Handlers struct {
	System     *handler.SystemHandler
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Client     *handler.ClientHandler
	Project    *handler.ProjectHandler
	Contract   *handler.ContractHandler
	Invoice    *handler.InvoiceHandler
	Payment    *handler.PaymentHandler
	Settings   *handler.SettingsHandler
	Navigation *handler.NavigationHandler
}

func concat(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Route-level guards. Services narrow further by record kind.
var (
	clientReaders   = concat(identity.GroupClients, identity.GroupContracts, identity.GroupInvoices, identity.GroupPayments)
	contractReaders = concat(identity.GroupContracts, identity.GroupInvoices, identity.GroupPayments)
	invoiceReaders  = concat(identity.GroupInvoices, identity.GroupPayments)
)

// authRoutes builds the /auth group. authLimit guards the credential
// endpoints and may be nil.
func authRoutes(h *handler.AuthHandler, authLimit gin.HandlerFunc) *DomainGroup {
	limited := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		if authLimit == nil {
			return []gin.HandlerFunc{fn}
		}
		return []gin.HandlerFunc{authLimit, fn}
	}
	return NewDomainGroup("auth", "/auth").
		POST("/login", limited(h.Login)...).
		POST("/init-admin", limited(h.InitAdmin)...).
		GET("/bootstrap", h.Bootstrap).
		POST("/logout", h.Logout).
		GET("/me", h.Me)
}

func userRoutes(h *handler.UserHandler, auth *handler.AuthHandler) *DomainGroup {
	users := middleware.RequireAnyPermission(identity.PermUsers)
	return NewDomainGroup("users", "/users").
		GET("/check", auth.CheckUsers).
		GET("", users, h.ListUsers).
		POST("", users, h.CreateUser).
		GET("/:id", users, h.GetUser).
		PUT("/:id", users, h.UpdateUser).
		DELETE("/:id", users, h.DeleteUser)
}

func clientRoutes(h *handler.ClientHandler) *DomainGroup {
	read := middleware.RequireAnyPermission(clientReaders...)
	write := middleware.RequireAnyPermission(identity.GroupClients...)
	return NewDomainGroup("clients", "/clients").
		GET("", read, h.ListClients).
		POST("", write, h.CreateClient).
		GET("/:id", read, h.GetClient).
		PUT("/:id", write, h.UpdateClient).
		DELETE("/:id", write, h.DeleteClient)
}

func projectRoutes(h *handler.ProjectHandler) *DomainGroup {
	return NewDomainGroup("projects", "/projects").
		Use(middleware.RequireAnyPermission(identity.PermProjects)).
		GET("", h.ListProjects).
		POST("", h.CreateProject).
		GET("/:id", h.GetProject).
		PUT("/:id", h.UpdateProject).
		DELETE("/:id", h.DeleteProject)
}

func contractRoutes(h *handler.ContractHandler) *DomainGroup {
	read := middleware.RequireAnyPermission(contractReaders...)
	write := middleware.RequireAnyPermission(identity.GroupContracts...)
	return NewDomainGroup("contracts", "/contracts").
		GET("", read, h.ListContracts).
		POST("", write, h.CreateContract).
		GET("/:id", read, h.GetContract).
		PUT("/:id", write, h.UpdateContract).
		DELETE("/:id", write, h.DeleteContract)
}

func invoiceRoutes(h *handler.InvoiceHandler) *DomainGroup {
	read := middleware.RequireAnyPermission(invoiceReaders...)
	write := middleware.RequireAnyPermission(identity.GroupInvoices...)
	return NewDomainGroup("invoices", "/invoices").
		GET("/next-number", write, h.NextInvoiceNumber).
		GET("", read, h.ListInvoices).
		POST("", write, h.CreateInvoice).
		GET("/:id", read, h.GetInvoice).
		PUT("/:id", write, h.UpdateInvoice).
		DELETE("/:id", write, h.DeleteInvoice)
}

func paymentRoutes(h *handler.PaymentHandler) *DomainGroup {
	return NewDomainGroup("payments", "/payments").
		Use(middleware.RequireAnyPermission(identity.GroupPayments...)).
		GET("/next-number", h.NextPaymentNumber).
		GET("", h.ListPayments).
		POST("", h.CreatePayment).
		GET("/:id", h.GetPayment).
		PUT("/:id", h.UpdatePayment).
		DELETE("/:id", h.DeletePayment)
}

func settingsRoutes(h *handler.SettingsHandler) *DomainGroup {
	admin := middleware.RequireAdmin()
	return NewDomainGroup("system-settings", "/system-settings").
		GET("", h.GetSettings).
		PUT("", admin, h.UpdateSettings).
		POST("/logo", admin, h.UploadLogo).
		DELETE("/logo", admin, h.RemoveLogo)
}

func navigationRoutes(h *handler.NavigationHandler) *DomainGroup {
	return NewDomainGroup("navigation", "/navigation").
		GET("", h.GetNavigation)
}

func systemRoutes(h *handler.SystemHandler) *DomainGroup {
	return NewDomainGroup("system", "/system").
		GET("/info", h.GetSystemInfo)
}

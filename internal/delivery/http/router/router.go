// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"perpus/internal/delivery/http/middleware"
	"perpus/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	MemberHandler  *handler.MemberHandler
	BookHandler    *handler.BookHandler
	LoanHandler    *handler.LoanHandler
	FineHandler    *handler.FineHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	memberHandler  *handler.MemberHandler
	bookHandler    *handler.BookHandler
	loanHandler    *handler.LoanHandler
	fineHandler    *handler.FineHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		memberHandler:  params.MemberHandler,
		bookHandler:    params.BookHandler,
		loanHandler:    params.LoanHandler,
		fineHandler:    params.FineHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes are the only public API surface
	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)

	// Member routes
	memberGroup := e.Group("/member")
	memberGroup.Use(r.authMiddleware.Authenticate)
	{
		memberGroup.GET("", r.memberHandler.List)
		memberGroup.POST("", r.memberHandler.Create)
		memberGroup.PUT("/:id", r.memberHandler.Update)
		memberGroup.DELETE("/:id", r.memberHandler.Delete)
		memberGroup.GET("/:id/kartu", r.memberHandler.Card)
	}

	// Book routes
	bookGroup := e.Group("/buku")
	bookGroup.Use(r.authMiddleware.Authenticate)
	{
		bookGroup.GET("", r.bookHandler.List)
		bookGroup.POST("", r.bookHandler.Create)
		bookGroup.PUT("/:id", r.bookHandler.Update)
		bookGroup.DELETE("/:id", r.bookHandler.Delete)
	}

	// Loan routes
	loanGroup := e.Group("/peminjaman")
	loanGroup.Use(r.authMiddleware.Authenticate)
	{
		loanGroup.GET("", r.loanHandler.List)
		loanGroup.GET("/:memberId", r.loanHandler.ListByMember)
		loanGroup.POST("", r.loanHandler.Create)
		loanGroup.PUT("/pengembalian/:id", r.loanHandler.MarkReturned)
	}

	// Fine routes
	fineGroup := e.Group("/denda")
	fineGroup.Use(r.authMiddleware.Authenticate)
	{
		fineGroup.GET("", r.fineHandler.List)
		fineGroup.POST("", r.fineHandler.Create)
	}
}

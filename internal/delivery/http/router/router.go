// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	deliverymiddleware "libris/internal/delivery/middleware"

	"libris/internal/delivery/http/middleware"
	"libris/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	BookHandler         *handler.BookHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *deliverymiddleware.RequestIDMiddleware
	LoggerMiddleware    *deliverymiddleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	bookHandler         *handler.BookHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *deliverymiddleware.RequestIDMiddleware
	loggerMiddleware    *deliverymiddleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		bookHandler:         params.BookHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Registration is open so new readers can create an account, and so is adding
// a book to the catalogue; everything else requires basic-auth credentials.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Open endpoints
	e.POST("/api/users", r.userHandler.CreateUser)
	e.POST("/api/books", r.bookHandler.CreateBook)

	// User routes that require authentication
	userGroup := e.Group("/api/users", r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.SearchUsers)
		userGroup.GET("/search/birthdate", r.userHandler.SearchUsersByBirthdateRange)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PUT("/:id", r.userHandler.UpdateUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
		userGroup.PUT("/:id/password", r.userHandler.ChangePassword)

		// Collection routes
		userGroup.GET("/:userId/books", r.userHandler.ListBooks)
		userGroup.POST("/:userId/books/:bookId", r.userHandler.AddBook)
		userGroup.DELETE("/:userId/books/:bookId", r.userHandler.RemoveBook)
	}

	// Catalogue routes that require authentication
	bookGroup := e.Group("/api/books", r.authMiddleware.Authenticate)
	{
		bookGroup.GET("", r.bookHandler.ListBooks)
		bookGroup.GET("/search", r.bookHandler.SearchBooks)
		bookGroup.GET("/isbn/:isbn", r.bookHandler.FindByISBN)
		bookGroup.GET("/:id", r.bookHandler.GetBook)
		bookGroup.PUT("/:id", r.bookHandler.UpdateBook)
		bookGroup.DELETE("/:id", r.bookHandler.DeleteBook)
	}
}

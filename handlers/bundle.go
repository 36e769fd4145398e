// File: tripforge/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Planner session endpoints
	CreateSessionHandler     gin.HandlerFunc
	GetSessionHandler        gin.HandlerFunc
	GenerateItineraryHandler gin.HandlerFunc
	UpdateCostHandler        gin.HandlerFunc
	DismissErrorHandler      gin.HandlerFunc

	// Form support endpoints
	CurrencyOptionsHandler gin.HandlerFunc
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler handles GET /api/health: confirms the process is alive and
// the relational store answers a trivial query.
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResponse struct {
	OK    bool   `json:"ok"`
	DB    int    `json:"db,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *HealthHandler) Check(c echo.Context) error {
	var one int
	err := h.db.WithContext(c.Request().Context()).Raw("SELECT 1 AS ok").Scan(&one).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, healthResponse{OK: false, Error: err.Error()})
	}

	return c.JSON(http.StatusOK, healthResponse{OK: true, DB: one})
}

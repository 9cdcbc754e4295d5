package handlers

import "gorm.io/gorm"

// Handler carries the store handle shared by all request handlers. The
// handle is injected at startup; nothing here holds process-wide state.
type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

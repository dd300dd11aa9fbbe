package health

import (
	"context"
	"time"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Service reports liveness of the process and its persistence backend.
type Service struct {
	Storage     string
	ObjectStore string
	DB          Pinger
}

// Status is the health payload.
type Status struct {
	OK          bool   `json:"ok"`
	Storage     string `json:"storage"`
	ObjectStore string `json:"objectStore"`
	Database    string `json:"database,omitempty"`
}

// NewService constructs a new health service.
func NewService(storage, objectStore string, db Pinger) *Service {
	return &Service{Storage: storage, ObjectStore: objectStore, DB: db}
}

// Status checks the database, when one is configured.
func (s *Service) Status(ctx context.Context) Status {
	st := Status{OK: true, Storage: s.Storage, ObjectStore: s.ObjectStore}
	if s.DB == nil {
		return st
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		st.OK = false
		st.Database = "down"
		return st
	}
	st.Database = "up"
	return st
}

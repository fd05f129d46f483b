package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-uaa/internal/utils"
	"github.com/MKhiriev/go-uaa/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func ptrInt64(v int64) *int64 { return &v }

func withToken(login string, authorities ...string) context.Context {
	return context.WithValue(context.Background(), utils.TokenCtxKey, models.Token{
		Login:       login,
		Authorities: authorities,
	})
}

func adminContext() context.Context {
	return withToken("admin", models.RoleAdmin, models.RoleUser)
}

func seededAuthorities() []models.Authority {
	return []models.Authority{{Name: models.RoleAdmin}, {Name: models.RoleUser}}
}

package service

import (
	"testing"
	"time"

	"github.com/GlebRadaev/invoicedash/internal/pg"
	"github.com/GlebRadaev/invoicedash/internal/repo"
	"github.com/GlebRadaev/invoicedash/pkg/auth"
	"github.com/GlebRadaev/invoicedash/pkg/viewcache"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	services := New(repos, viewcache.NewMemory(time.Minute), auth.NewMockTokenService(ctrl))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.InvoiceService)
	assert.NotNil(t, services.DashboardService)
}

package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter/backend/internal/domain"
	"github.com/globetrotter/backend/internal/handler"
)

// mockBudgetServicer is a test double for handler.BudgetServicer.
type mockBudgetServicer struct {
	summary        func(ctx context.Context, tripID uuid.UUID) (domain.BudgetSummary, error)
	breakdown      func(ctx context.Context, tripID uuid.UUID) ([]domain.DestinationBudget, error)
	percentOfLimit func(ctx context.Context, tripID uuid.UUID, limit float64) (int, error)
}

func (m *mockBudgetServicer) Summary(ctx context.Context, tripID uuid.UUID) (domain.BudgetSummary, error) {
	return m.summary(ctx, tripID)
}
func (m *mockBudgetServicer) Breakdown(ctx context.Context, tripID uuid.UUID) ([]domain.DestinationBudget, error) {
	return m.breakdown(ctx, tripID)
}
func (m *mockBudgetServicer) PercentOfLimit(ctx context.Context, tripID uuid.UUID, limit float64) (int, error) {
	return m.percentOfLimit(ctx, tripID, limit)
}

var _ handler.BudgetServicer = (*mockBudgetServicer)(nil)

func budgetMock() *mockBudgetServicer {
	return &mockBudgetServicer{
		summary: func(_ context.Context, _ uuid.UUID) (domain.BudgetSummary, error) {
			sum := domain.NewBudgetSummary()
			sum.Total = 322
			sum.ByCategory[domain.CategorySightseeing] = 192
			sum.ByCategory[domain.CategoryFood] = 130
			sum.ByDestination["Paris"] = 322
			return sum, nil
		},
		breakdown: func(_ context.Context, _ uuid.UUID) ([]domain.DestinationBudget, error) {
			return []domain.DestinationBudget{
				{City: "Paris", DurationDays: 3, StayCost: 0, ActivitiesCost: 322, Total: 322},
			}, nil
		},
	}
}

func TestGetBudget_200(t *testing.T) {
	rec := doJSON(t, newHTTPHandler(nil, nil, budgetMock(), nil), http.MethodGet,
		"/trips/"+uuid.NewString()+"/budget", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.BudgetResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 322.0, resp.Total)
	assert.Equal(t, 192.0, resp.ByCategory["sightseeing"])
	assert.Equal(t, 322.0, resp.ByDestination["Paris"])
	require.Len(t, resp.Breakdown, 1)
	assert.Equal(t, "Paris", resp.Breakdown[0].City)
	assert.Nil(t, resp.PercentOfLimit, "absent without ?limit=")
}

func TestGetBudget_200_WithLimit(t *testing.T) {
	svc := budgetMock()
	svc.percentOfLimit = func(_ context.Context, _ uuid.UUID, limit float64) (int, error) {
		assert.Equal(t, 644.0, limit)
		return 50, nil
	}

	rec := doJSON(t, newHTTPHandler(nil, nil, svc, nil), http.MethodGet,
		"/trips/"+uuid.NewString()+"/budget?limit=644", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.BudgetResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.PercentOfLimit)
	assert.Equal(t, 50, *resp.PercentOfLimit)
}

func TestGetBudget_400_BadLimit(t *testing.T) {
	rec := doJSON(t, newHTTPHandler(nil, nil, budgetMock(), nil), http.MethodGet,
		"/trips/"+uuid.NewString()+"/budget?limit=lots", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBudget_404(t *testing.T) {
	svc := &mockBudgetServicer{
		summary: func(_ context.Context, _ uuid.UUID) (domain.BudgetSummary, error) {
			return domain.BudgetSummary{}, domain.ErrNotFound
		},
	}

	rec := doJSON(t, newHTTPHandler(nil, nil, svc, nil), http.MethodGet,
		"/trips/"+uuid.NewString()+"/budget", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

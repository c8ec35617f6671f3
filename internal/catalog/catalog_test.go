package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/driveline/internal/domain"
	"github.com/alexanderramin/driveline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SQLiteVehicleRepo {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLiteVehicleRepo(db)
}

func TestVehicleRepo_PutAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	v := testutil.NewTestVehicle("veh-1", "Trailfinder Hybrid")
	require.NoError(t, repo.Put(ctx, v))

	got, err := repo.GetByID(ctx, "veh-1")
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestVehicleRepo_PutUpsertsExisting(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, testutil.NewTestVehicle("veh-1", "Trailfinder")))
	require.NoError(t, repo.Put(ctx, testutil.NewTestVehicle("veh-1", "Trailfinder", testutil.WithMSRP(39500))))

	got, err := repo.GetByID(ctx, "veh-1")
	require.NoError(t, err)
	assert.Equal(t, 39500.0, got.MSRP)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestVehicleRepo_GetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVehicleRepo_NullableFieldsRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ev := testutil.NewTestVehicle("veh-ev", "Voltline",
		testutil.WithFuelType("electric"),
		testutil.WithRange(280),
		testutil.WithNoSafetyRating())
	ev.MpgCombined = nil
	require.NoError(t, repo.Put(ctx, ev))

	got, err := repo.GetByID(ctx, "veh-ev")
	require.NoError(t, err)
	assert.Nil(t, got.MpgCombined)
	assert.Nil(t, got.SafetyRating)
	require.NotNil(t, got.Range)
	assert.Equal(t, 280.0, *got.Range)
}

func TestVehicleRepo_ListByIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, testutil.NewTestVehicle("veh-1", "Alpha")))
	require.NoError(t, repo.Put(ctx, testutil.NewTestVehicle("veh-2", "Bravo")))
	require.NoError(t, repo.Put(ctx, testutil.NewTestVehicle("veh-3", "Charlie")))

	got, err := repo.ListByIDs(ctx, []string{"veh-1", "veh-3", "veh-missing"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	empty, err := repo.ListByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLeadRepo_CreateAndList(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	vehicles := NewSQLiteVehicleRepo(db)
	leads := NewSQLiteLeadRepo(db)

	require.NoError(t, vehicles.Put(ctx, testutil.NewTestVehicle("veh-1", "Trailfinder")))

	lead := domain.DealerLead{
		VehicleID: "veh-1",
		Name:      "Dana Reyes",
		Email:     "dana@example.com",
		Zip:       "94103",
		Consent:   true,
	}
	require.NoError(t, leads.Create(ctx, lead))

	got, err := leads.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].ID)
	assert.False(t, got[0].CreatedAt.IsZero())
	assert.Equal(t, "veh-1", got[0].VehicleID)
}

func TestLeadRepo_RejectsWithoutConsent(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	lead := domain.DealerLead{
		VehicleID: "veh-1",
		Name:      "Dana Reyes",
		Email:     "dana@example.com",
		Zip:       "94103",
		Consent:   false,
	}
	err = NewSQLiteLeadRepo(db).Create(context.Background(), lead)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "consent")
}

func TestImport(t *testing.T) {
	repo := NewMemoryVehicleRepo()
	doc := `[
		{"id": "veh-1", "model": "Trailfinder", "year": 2025, "bodyStyle": "suv",
		 "fuelType": "hybrid", "seating": 5, "msrp": 36000, "features": ["airbags"]},
		{"model": "No ID", "year": 2025},
		{"id": "veh-2", "model": "Voltline", "year": 2025, "bodyStyle": "sedan",
		 "fuelType": "electric", "seating": 5, "range": 280, "msrp": 42000}
	]`

	res, err := Import(context.Background(), repo, strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	require.Len(t, res.Skipped, 1)
	assert.Contains(t, res.Skipped[0], "entry 1")

	v2, err := repo.GetByID(context.Background(), "veh-2")
	require.NoError(t, err)
	require.NotNil(t, v2.Range)
	assert.Equal(t, 280.0, *v2.Range)
	assert.NotNil(t, v2.Features)
}

func TestImport_MalformedJSON(t *testing.T) {
	_, err := Import(context.Background(), NewMemoryVehicleRepo(), strings.NewReader("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalog JSON")
}

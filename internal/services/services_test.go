package services

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/farmledger/api/internal/auth"
	"github.com/farmledger/api/internal/database"
	"github.com/farmledger/api/internal/logger"
	"github.com/farmledger/api/internal/models"
	"github.com/farmledger/api/internal/repository"
)

// testEnv bundles the store and the shared service dependencies over an
// in-memory database.
type testEnv struct {
	store  *repository.Store
	issuer *auth.TokenIssuer
	log    *logger.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return &testEnv{
		store:  repository.NewStore(db),
		issuer: auth.NewTokenIssuer("test-secret", time.Hour),
		log:    logger.New("test"),
	}
}

// seedUser creates an account directly in the store.
func (e *testEnv) seedUser(t *testing.T, name string) *models.User {
	t.Helper()

	user := &models.User{Name: name, Email: name + "@example.com", PasswordHash: "x"}
	require.NoError(t, e.store.Users.Add(context.Background(), user))
	return user
}

func (e *testEnv) seedFarm(t *testing.T, userID uuid.UUID, name string) *models.Farm {
	t.Helper()

	farm := &models.Farm{UserID: userID, Name: name}
	require.NoError(t, e.store.Farms.Add(context.Background(), farm))
	return farm
}

func (e *testEnv) seedField(t *testing.T, farmID uuid.UUID, name string) *models.Field {
	t.Helper()

	field := &models.Field{FarmID: farmID, Name: name, SoilType: models.SoilNotSelected}
	require.NoError(t, e.store.Fields.Add(context.Background(), field))
	return field
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.store, env.issuer, env.log)
	ctx := context.Background()

	input := RegisterInput{Name: "anna", Email: "anna@example.com", Password: "correct-horse"}
	user, err := svc.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "anna", user.Name)
	assert.NotEqual(t, uuid.Nil, user.ID)

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{Name: "other", Email: "anna@example.com", Password: "irrelevant1"})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{Name: "anna", Email: "anna2@example.com", Password: "irrelevant1"})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("login returns a parseable token", func(t *testing.T) {
		result, err := svc.Login(ctx, LoginInput{Email: "anna@example.com", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.User.ID)

		parsed, err := env.issuer.Parse(result.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, parsed)
	})

	t.Run("wrong password and unknown email look identical", func(t *testing.T) {
		_, errWrong := svc.Login(ctx, LoginInput{Email: "anna@example.com", Password: "nope"})
		_, errMissing := svc.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "nope"})
		assert.ErrorIs(t, errWrong, ErrCredentials)
		assert.ErrorIs(t, errMissing, ErrCredentials)
	})
}

func TestFarmService_OwnershipBoundaries(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFarmService(env.store, env.log)
	ctx := context.Background()

	owner := env.seedUser(t, "owner")
	intruder := env.seedUser(t, "intruder")
	farm := env.seedFarm(t, owner.ID, "Home Farm")

	t.Run("owner reads the farm", func(t *testing.T) {
		dto, err := svc.GetFarm(ctx, owner.ID, farm.ID)
		require.NoError(t, err)
		assert.Equal(t, "Home Farm", dto.Name)
	})

	t.Run("foreign farm is an ownership failure", func(t *testing.T) {
		_, err := svc.GetFarm(ctx, intruder.ID, farm.ID)
		assert.ErrorIs(t, err, ErrOwnership)
	})

	t.Run("missing farm is not found", func(t *testing.T) {
		_, err := svc.GetFarm(ctx, owner.ID, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete by non-owner leaves the farm", func(t *testing.T) {
		err := svc.DeleteFarm(ctx, intruder.ID, farm.ID)
		assert.ErrorIs(t, err, ErrOwnership)

		dto, err := svc.GetFarm(ctx, owner.ID, farm.ID)
		require.NoError(t, err)
		assert.Equal(t, farm.ID, dto.ID)
	})
}

func TestFieldService_CRUD(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFieldService(env.store, env.log)
	ctx := context.Background()

	owner := env.seedUser(t, "grower")
	farm := env.seedFarm(t, owner.ID, "Arable Farm")

	area := 7.25
	dto, err := svc.CreateField(ctx, owner.ID, FieldInput{
		FarmID:   farm.ID,
		Name:     "Long Strip",
		Area:     &area,
		SoilType: models.SoilChernozem,
	})
	require.NoError(t, err)
	assert.Equal(t, models.SoilChernozem, dto.SoilType)
	assert.Equal(t, "Chernozem", dto.SoilTypeLabel)
	assert.Equal(t, farm.ID, dto.Farm.ID)

	t.Run("unknown soil type is invalid input", func(t *testing.T) {
		_, err := svc.CreateField(ctx, owner.ID, FieldInput{
			FarmID:   farm.ID,
			Name:     "Bad Soil",
			SoilType: "volcanic",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty soil type defaults to not selected", func(t *testing.T) {
		created, err := svc.CreateField(ctx, owner.ID, FieldInput{FarmID: farm.ID, Name: "Plain"})
		require.NoError(t, err)
		assert.Equal(t, models.SoilNotSelected, created.SoilType)
	})

	t.Run("update replaces attributes", func(t *testing.T) {
		updated, err := svc.UpdateField(ctx, owner.ID, dto.ID, FieldInput{
			FarmID:   farm.ID,
			Name:     "Long Strip North",
			SoilType: models.SoilLoess,
		})
		require.NoError(t, err)
		assert.Equal(t, "Long Strip North", updated.Name)
		assert.Equal(t, models.SoilLoess, updated.SoilType)
		assert.Nil(t, updated.Area)
	})
}

func TestCropService_SingleActiveCrop(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCropService(env.store, env.log)
	ctx := context.Background()

	owner := env.seedUser(t, "rotator")
	farm := env.seedFarm(t, owner.ID, "Rotation Farm")
	field := env.seedField(t, farm.ID, "Rotated Plot")

	first, err := svc.CreateCrop(ctx, owner.ID, CropInput{
		FieldID: field.ID, Name: "Winter Wheat", Type: models.CropCereal, IsActive: true,
	})
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	second, err := svc.CreateCrop(ctx, owner.ID, CropInput{
		FieldID: field.ID, Name: "Rapeseed", Type: models.CropOilseed, IsActive: true,
	})
	require.NoError(t, err)

	// Activating the second crop must have deactivated the first.
	reloaded, err := svc.GetCrop(ctx, owner.ID, first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)

	// Repeated activation of the same crop keeps the invariant.
	for i := 0; i < 3; i++ {
		_, err = svc.UpdateCrop(ctx, owner.ID, second.ID, CropInput{
			FieldID: field.ID, Name: "Rapeseed", Type: models.CropOilseed, IsActive: true,
		})
		require.NoError(t, err)
	}
	active, err := env.store.Crops.ActiveByField(ctx, field.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)

	crops, err := env.store.Crops.ByField(ctx, field.ID)
	require.NoError(t, err)
	activeCount := 0
	for _, c := range crops {
		if c.IsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestCropService_ListActiveCrops(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCropService(env.store, env.log)
	ctx := context.Background()

	owner := env.seedUser(t, "collector")
	farm := env.seedFarm(t, owner.ID, "Spread Farm")
	fieldA := env.seedField(t, farm.ID, "A")
	fieldB := env.seedField(t, farm.ID, "B")

	_, err := svc.CreateCrop(ctx, owner.ID, CropInput{FieldID: fieldA.ID, Name: "Oats", Type: models.CropCereal, IsActive: true})
	require.NoError(t, err)
	_, err = svc.CreateCrop(ctx, owner.ID, CropInput{FieldID: fieldB.ID, Name: "Idle", IsActive: false})
	require.NoError(t, err)

	active, err := svc.ListActiveCrops(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Oats", active[0].Name)
	assert.Equal(t, fieldA.ID, active[0].Field.ID)
}

func TestFertilizationService_OwnershipWalk(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFertilizationService(env.store, env.log)
	ctx := context.Background()

	owner := env.seedUser(t, "fertuser")
	intruder := env.seedUser(t, "fertintruder")
	farm := env.seedFarm(t, owner.ID, "Fert Farm")
	field := env.seedField(t, farm.ID, "Fert Plot")
	crop := &models.Crop{FieldID: field.ID, Name: "Barley", Type: models.CropCereal, IsActive: true}
	require.NoError(t, env.store.Crops.Add(ctx, crop))

	qty := 50.0
	dto, err := svc.CreateFertilization(ctx, owner.ID, FertilizationInput{
		CropID:        crop.ID,
		Date:          time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		Type:          models.FertGranular,
		Intervention:  models.InterventionPRSK1420,
		NameOfProduct: "Urea",
		Quantity:      &qty,
	})
	require.NoError(t, err)
	assert.Equal(t, "Urea", dto.NameOfProduct)
	assert.Equal(t, crop.ID, dto.Crop.ID)

	t.Run("intruder cannot read through the crop chain", func(t *testing.T) {
		_, err := svc.GetFertilization(ctx, intruder.ID, dto.ID)
		assert.ErrorIs(t, err, ErrOwnership)
	})

	t.Run("list is ordered oldest first", func(t *testing.T) {
		_, err := svc.CreateFertilization(ctx, owner.ID, FertilizationInput{
			CropID: crop.ID,
			Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Type:   models.FertManure,
		})
		require.NoError(t, err)

		list, err := svc.ListFertilizations(ctx, owner.ID, crop.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.True(t, list[0].Date.Before(list[1].Date))
	})
}

func TestReferenceParcelService_DuplicateNumber(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReferenceParcelService(env.store, env.log)
	ctx := context.Background()

	owner := env.seedUser(t, "parceluser")
	farm := env.seedFarm(t, owner.ID, "Parcel Farm")
	field := env.seedField(t, farm.ID, "Parcel Plot")

	_, err := svc.CreateReferenceParcel(ctx, owner.ID, ReferenceParcelInput{
		FieldID:      field.ID,
		ParcelNumber: "061412_2.0001.123",
	})
	require.NoError(t, err)

	_, err = svc.CreateReferenceParcel(ctx, owner.ID, ReferenceParcelInput{
		FieldID:      field.ID,
		ParcelNumber: "061412_2.0001.123",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestDashboardService_Home(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDashboardService(env.store, env.log)
	ctx := context.Background()

	owner := env.seedUser(t, "dashuser")
	farm := env.seedFarm(t, owner.ID, "Dash Farm")
	area := 4.5
	field := &models.Field{FarmID: farm.ID, Name: "Dash Plot", Area: &area, SoilType: models.SoilNotSelected}
	require.NoError(t, env.store.Fields.Add(ctx, field))
	require.NoError(t, env.store.Crops.Add(ctx, &models.Crop{FieldID: field.ID, Name: "Beets", Type: models.CropRoot, IsActive: true}))

	when := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, env.store.SoilMeasurements.Add(ctx, &models.SoilMeasurement{FieldID: field.ID, Date: when}))

	summary, err := svc.Home(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.FarmCount)
	assert.Equal(t, 1, summary.FieldCount)
	assert.Equal(t, 4.5, summary.TotalArea)
	assert.Equal(t, 1, summary.ActiveCropCount)
	require.NotNil(t, summary.LatestSoilMeasurement)
	assert.True(t, when.Equal(*summary.LatestSoilMeasurement))
}

func TestDashboardService_MapData(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDashboardService(env.store, env.log)
	ctx := context.Background()

	owner := env.seedUser(t, "mapuser")
	farm := env.seedFarm(t, owner.ID, "Map Farm")

	boundary := models.Boundary{{{21.01, 52.23}, {21.02, 52.23}, {21.02, 52.24}}}
	field := &models.Field{FarmID: farm.ID, Name: "Traced Plot", SoilType: models.SoilNotSelected, Coordinates: boundary}
	require.NoError(t, env.store.Fields.Add(ctx, field))
	require.NoError(t, env.store.Crops.Add(ctx, &models.Crop{FieldID: field.ID, Name: "Potatoes", Type: models.CropTuber, IsActive: true}))

	fields, err := svc.MapData(ctx, owner.ID, farm.ID)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, boundary, fields[0].Coordinates)
	require.NotNil(t, fields[0].ActiveCrop)
	assert.Equal(t, "Potatoes", *fields[0].ActiveCrop)

	other := env.seedUser(t, "mapintruder")
	_, err = svc.MapData(ctx, other.ID, farm.ID)
	assert.ErrorIs(t, err, ErrOwnership)
}

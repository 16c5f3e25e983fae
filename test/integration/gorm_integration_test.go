package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/repository/specification"
	"legalbridge-be/internal/repository/unitofwork"
	"legalbridge-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ProfileRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Profile Upsert Then Fetch", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:       uuid.New(),
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
			UserType: entity.UserTypeLawyer,
			Status:   entity.UserStatusActive,
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))
		defer uow.UserRepository().Delete(ctx, user.Id)

		profile := &entity.Profile{
			UserId:     user.Id,
			FullName:   "Integration Test User",
			Bio:        "First version",
			UserType:   entity.UserTypeLawyer,
			Specialty:  "Contract Law",
			Experience: 5,
			HourlyRate: 1200,
		}
		require.NoError(t, uow.ProfileRepository().Upsert(ctx, profile))
		defer uow.ProfileRepository().Delete(ctx, user.Id)

		// A fetch right after the save must see exactly what was written.
		stored, err := uow.ProfileRepository().FindOne(ctx, specification.Filter("user_id", user.Id))
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "First version", stored.Bio)
		assert.Equal(t, 1200, stored.HourlyRate)

		// A second save for the same user replaces the row, never duplicates it.
		profile.Bio = "Second version"
		profile.HourlyRate = 1500
		require.NoError(t, uow.ProfileRepository().Upsert(ctx, profile))

		stored, err = uow.ProfileRepository().FindOne(ctx, specification.Filter("user_id", user.Id))
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Second version", stored.Bio)
		assert.Equal(t, 1500, stored.HourlyRate)
	})

	t.Run("Notification Mark Read Is Owner Scoped", func(t *testing.T) {
		ctx := context.Background()

		owner := &entity.User{
			Id:       uuid.New(),
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Notification Owner",
			UserType: entity.UserTypeClient,
			Status:   entity.UserStatusActive,
		}
		require.NoError(t, uow.UserRepository().Create(ctx, owner))
		defer uow.UserRepository().Delete(ctx, owner.Id)

		notification := &entity.Notification{
			Id:     uuid.New(),
			UserId: owner.Id,
			Type:   "CONSULTATION_BOOKED",
			Title:  "Consultation confirmed",
			Body:   "Your consultation is booked.",
		}
		require.NoError(t, uow.NotificationRepository().Create(ctx, notification))

		// Another user knowing the id must not be able to flip the flag.
		require.NoError(t, uow.NotificationRepository().MarkRead(ctx, uuid.New(), notification.Id))

		stored, err := uow.NotificationRepository().FindAll(ctx, specification.UserOwnedBy{UserID: owner.Id})
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.False(t, stored[0].Read)

		require.NoError(t, uow.NotificationRepository().MarkRead(ctx, owner.Id, notification.Id))

		stored, err = uow.NotificationRepository().FindAll(ctx, specification.UserOwnedBy{UserID: owner.Id})
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.True(t, stored[0].Read)
	})

	t.Run("Missing Profile Returns Nil", func(t *testing.T) {
		stored, err := uow.ProfileRepository().FindOne(context.Background(), specification.Filter("user_id", uuid.New()))
		assert.NoError(t, err)
		assert.Nil(t, stored)
	})
}

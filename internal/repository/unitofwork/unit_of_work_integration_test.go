package unitofwork

import (
	"context"
	"log"
	"os"
	"testing"

	"badger-buds-be/internal/entity"
	"badger-buds-be/internal/model"
	"badger-buds-be/internal/repository/specification"
	"badger-buds-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntegrationFactory(t *testing.T) RepositoryFactory {
	if err := godotenv.Load("../../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, true)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Cat{}, &model.AdoptionRecord{}))

	return NewRepositoryFactory(db)
}

func TestCatRepositoryUpsert(t *testing.T) {
	factory := newIntegrationFactory(t)
	ctx := context.Background()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	desc := "integration cat"
	cat := &entity.Cat{
		Id:          "it-" + uuid.NewString(),
		Name:        "Pickles",
		Gender:      "female",
		Breed:       "Tabby",
		Age:         7,
		ImgIds:      []string{"a.jpg", "b.jpg"},
		Description: &desc,
	}
	require.NoError(t, uow.CatRepository().Upsert(ctx, cat))

	cat.Name = "Pickles II"
	cat.ImgIds = []string{"c.jpg"}
	require.NoError(t, uow.CatRepository().Upsert(ctx, cat))

	found, err := uow.CatRepository().FindOne(ctx, specification.ByID{ID: cat.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Pickles II", found.Name)
	assert.Equal(t, []string{"c.jpg"}, found.ImgIds)

	missing, err := uow.CatRepository().FindOne(ctx, specification.ByID{ID: "it-missing"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAdoptionRecordRepositoryCreate(t *testing.T) {
	factory := newIntegrationFactory(t)
	ctx := context.Background()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	sessionId := uuid.NewString()
	record := &entity.AdoptionRecord{SessionId: sessionId, CatId: "it-cat", CatName: "Pickles"}
	require.NoError(t, uow.AdoptionRecordRepository().Create(ctx, record))
	assert.NotEqual(t, uuid.Nil, record.Id)

	count, err := uow.AdoptionRecordRepository().Count(ctx, specification.BySessionID{SessionID: sessionId})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

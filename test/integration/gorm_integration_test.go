package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/repository/specification"
	"smart-negotiator-be/internal/repository/unitofwork"
	"smart-negotiator-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
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

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ProductRepository())
	assert.NotNil(t, uow.ProductEmbeddingRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Product Repository", func(t *testing.T) {
		count, err := uow.ProductRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Product count: %d", count)
	})

	t.Run("Check Product Embedding Repository", func(t *testing.T) {
		count, err := uow.ProductEmbeddingRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("ProductEmbedding count: %d", count)
	})

	t.Run("Check Transactional Chat Persistence", func(t *testing.T) {
		ctx := context.Background()
		userEmail := "test-integration-" + uuid.New().String() + "@example.com"
		sessionId := uuid.New().String()

		txUow := uowFactory.NewUnitOfWork(ctx)
		err := txUow.Begin(ctx)
		assert.NoError(t, err)

		userTurn := &entity.ConversationMessage{
			UserEmail: userEmail,
			SessionId: sessionId,
			Role:      "user",
			Message:   "any laptops in stock?",
		}
		botTurn := &entity.ConversationMessage{
			UserEmail: userEmail,
			SessionId: sessionId,
			Role:      "bot",
			Message:   "Laptop price ₹55000 — Fast ultrabook",
		}

		err = txUow.ConversationRepository().Create(ctx, userTurn)
		assert.NoError(t, err)
		err = txUow.ConversationRepository().Create(ctx, botTurn)
		assert.NoError(t, err)

		err = txUow.Commit()
		assert.NoError(t, err)

		// Both rows must be visible after commit
		history, err := uow.ConversationRepository().FindAll(ctx,
			specification.ByUserEmail{Email: userEmail},
		)
		assert.NoError(t, err)
		assert.Len(t, history, 2)

		// Cleanup
		deleted, err := uow.ConversationRepository().DeleteByUserEmail(ctx, userEmail)
		assert.NoError(t, err)
		assert.EqualValues(t, 2, deleted)
	})
}

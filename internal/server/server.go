package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/navigate-zea/navigate/backend/internal/server/middleware"
	"github.com/navigate-zea/navigate/backend/internal/session"
	"github.com/navigate-zea/navigate/backend/internal/storage"
	"github.com/navigate-zea/navigate/backend/internal/util"
	"github.com/navigate-zea/navigate/backend/pkg/ai/factory"
	"github.com/navigate-zea/navigate/backend/pkg/logger"
	"github.com/navigate-zea/navigate/backend/pkg/store"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, s3Client := datasetSource(ctx)

	st := store.New()
	ds, err := store.ReadDataset(ctx, source)
	if err != nil {
		logger.Fatal("Failed to read dataset", "err", err)
	}
	if err := st.Load(ds); err != nil {
		logger.Fatal("Failed to load dataset", "err", err)
	}
	counts := st.Collections().CountAll()
	logger.Info("Dataset loaded",
		"stakeholders", counts.Stakeholders,
		"technologies", counts.Technologies,
		"funding_events", counts.FundingEvents,
		"projects", counts.Projects,
		"relationships", counts.Relationships,
	)

	sess := session.New(st, source)
	aiClient := factory.New(factory.FromEnv())

	app := &mid.App{
		Session:      sess,
		AiClient:     aiClient,
		S3:           s3Client,
		MasterAPIKey: util.GetEnv("MASTER_API_KEY"),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("8M"))

	RegisterRoutes(e)

	go func() {
		port := int(util.GetEnvNumeric("PORT", 8080))
		logger.Info("Starting server", "port", port)
		if err := e.Start(fmt.Sprintf(":%d", port)); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

// datasetSource picks S3 when a bucket is configured, otherwise the local
// data directory.
func datasetSource(ctx context.Context) (store.FileSource, *s3.Client) {
	if util.GetEnv("AWS_BUCKET") != "" {
		client := storage.NewS3Client(ctx)
		if client != nil {
			prefix := util.GetEnvString("DATA_S3_PREFIX", "data")
			logger.Info("Reading dataset from S3", "prefix", prefix)
			return storage.DatasetSource(client, prefix), client
		}
		logger.Warn("AWS_BUCKET set but S3 client could not be created, falling back to local data")
	}

	dir := util.GetEnvString("DATA_DIR", "data")
	return store.DirSource(dir), nil
}

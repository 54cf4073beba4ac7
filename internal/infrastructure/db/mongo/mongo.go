package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Asfa64/DOC-ASFA/internal/infrastructure/config"
)

const connectTimeout = 10 * time.Second

// Connect opens the MongoDB database holding the dashboard collections
// (users, profiles, buttons) and the documents GridFS bucket. Connectivity
// is verified with a ping before anything is handed to the repositories.
func Connect(ctx context.Context, cfg config.MongoConfig, log zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Info().Str("database", cfg.Database).Msg("mongo connected")
	return client, client.Database(cfg.Database), nil
}

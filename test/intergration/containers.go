package intergration

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"

	platform "pawmart/internal/platform/mongodb"
)

type Env struct {
	Mongo    *mongodb.MongoDBContainer
	DB       *mongo.Database
	MongoURI string
	Cancel   context.CancelFunc
}

func Setup(ctx context.Context) (*Env, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)

	mongoC, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		cancel()
		return nil, err
	}

	uri, err := mongoC.ConnectionString(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	db, err := platform.Connect(ctx, uri, "pawmart_test")
	if err != nil {
		cancel()
		return nil, err
	}

	return &Env{
		Mongo:    mongoC,
		DB:       db,
		MongoURI: uri,
		Cancel:   cancel,
	}, nil
}

func (e *Env) Teardown(ctx context.Context) {
	e.Cancel()
	_ = e.DB.Client().Disconnect(ctx)
	_ = e.Mongo.Terminate(ctx)
}

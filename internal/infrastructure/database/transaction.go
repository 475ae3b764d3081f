package database

import (
	"context"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTxRunner runs units of work in a multi-document transaction.
// Requires a replica set or sharded cluster.
type MongoTxRunner struct {
	client *mongo.Client
}

func NewMongoTxRunner(client *mongo.Client) *MongoTxRunner {
	return &MongoTxRunner{client: client}
}

var _ contract.ITransactionRunner = (*MongoTxRunner)(nil)

func (r *MongoTxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}

// DirectRunner executes fn without a transaction, for standalone servers.
type DirectRunner struct{}

func NewDirectRunner() *DirectRunner {
	return &DirectRunner{}
}

var _ contract.ITransactionRunner = (*DirectRunner)(nil)

func (DirectRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

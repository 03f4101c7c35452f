// Package admin issues catalog DDL against a Cloud Spanner database
// through the database admin API.
package admin

import (
	"context"
	"fmt"
	"log/slog"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"google.golang.org/api/option"
)

// DefaultBatchSize bounds how many statements go into one schema
// update. Spanner applies each UpdateDatabaseDdl request atomically,
// so smaller batches keep individual operations short.
const DefaultBatchSize = 50

// Applier applies DDL statement lists to a database.
type Applier struct {
	Logger    *slog.Logger
	BatchSize int

	client *database.DatabaseAdminClient
}

// NewApplier builds a database admin client. credentialsFile may be
// empty, in which case application default credentials are used.
func NewApplier(ctx context.Context, credentialsFile string, logger *slog.Logger) (*Applier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := database.NewDatabaseAdminClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create database admin client: %w", err)
	}
	return &Applier{
		Logger:    logger,
		BatchSize: DefaultBatchSize,
		client:    client,
	}, nil
}

// Close releases the underlying client.
func (a *Applier) Close() error {
	return a.client.Close()
}

// Apply runs the statements against db in batches, waiting for each
// schema update operation to finish before starting the next.
func (a *Applier) Apply(ctx context.Context, db string, stmts []string) error {
	batches := Batches(stmts, a.BatchSize)
	for i, batch := range batches {
		a.Logger.Info("applying schema update",
			"database", db, "batch", i+1, "batches", len(batches), "statements", len(batch))
		op, err := a.client.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   db,
			Statements: batch,
		})
		if err != nil {
			return fmt.Errorf("failed to start schema update: %w", err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("schema update failed: %w", err)
		}
	}
	return nil
}

// Batches splits stmts into chunks of at most size statements. A size
// of zero or less yields a single batch.
func Batches(stmts []string, size int) [][]string {
	if len(stmts) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]string{stmts}
	}
	var out [][]string
	for len(stmts) > size {
		out = append(out, stmts[:size])
		stmts = stmts[size:]
	}
	return append(out, stmts)
}

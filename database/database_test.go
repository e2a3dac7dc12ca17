package database

import (
	"context"
	"errors"
	"testing"
)

// Connection-level behavior is covered by integration environments; the
// unit tests here pin down the disconnected-client contract.

func TestSurrealDB_DisconnectedClient(t *testing.T) {
	t.Parallel()

	db := NewSurrealDB(Config{Host: "localhost", Port: "8000"})
	ctx := context.Background()

	if err := db.Ping(ctx); !errors.Is(err, ErrConnection) {
		t.Errorf("Ping: expected ErrConnection, got %v", err)
	}
	if _, err := db.Query(ctx, "SELECT * FROM widget", nil); !errors.Is(err, ErrConnection) {
		t.Errorf("Query: expected ErrConnection, got %v", err)
	}
	if _, err := db.QueryOne(ctx, "SELECT * FROM widget", nil); !errors.Is(err, ErrConnection) {
		t.Errorf("QueryOne: expected ErrConnection, got %v", err)
	}
	if err := db.Execute(ctx, "DELETE widget", nil); !errors.Is(err, ErrConnection) {
		t.Errorf("Execute: expected ErrConnection, got %v", err)
	}
}

func TestSurrealDB_CloseWithoutConnectIsNil(t *testing.T) {
	t.Parallel()

	db := NewSurrealDB(Config{})
	if err := db.Close(); err != nil {
		t.Errorf("expected nil close on unconnected client, got %v", err)
	}
}

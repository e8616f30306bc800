package authstore

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestNewMongoStore(t *testing.T) {
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic for nil mongoClient")
			}
		}()
		NewMongoStore(nil, Config{})
	}()

	// Connect does not require a reachable server.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("Connect error: %v", err)
	}
	defer client.Disconnect(context.Background())

	cases := []struct {
		title   string
		cfg     Config
		expDB   string
		expColl string
	}{
		{
			title:   "defaults",
			cfg:     Config{},
			expDB:   DefaultDBName,
			expColl: DefaultAccountsCollectionName,
		},
		{
			title:   "custom",
			cfg:     Config{DBName: "dbname", AccountsCollectionName: "ccname"},
			expDB:   "dbname",
			expColl: "ccname",
		},
	}

	for _, c := range cases {
		ms := NewMongoStore(client, c.cfg)
		if got := ms.c.Database().Name(); got != c.expDB {
			t.Errorf("[%s] Expected db %q, got: %q", c.title, c.expDB, got)
		}
		if got := ms.c.Name(); got != c.expColl {
			t.Errorf("[%s] Expected collection %q, got: %q", c.title, c.expColl, got)
		}
	}
}

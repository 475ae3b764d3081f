package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	UsersCollection      = "users"
	ProductsCollection   = "products"
	CategoriesCollection = "categories"
	CartsCollection      = "carts"
	OrdersCollection     = "orders"
)

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	specs := map[string][]mongo.IndexModel{
		UsersCollection: {
			unique("email", "email_unique"),
			unique("username", "username_unique"),
		},
		ProductsCollection: {
			unique("name", "name_unique"),
			unique("slug", "slug_unique"),
			{Keys: bson.D{{Key: "category", Value: 1}}, Options: options.Index().SetName("category_index")},
		},
		CategoriesCollection: {
			unique("name", "name_unique"),
			unique("slug", "slug_unique"),
		},
		CartsCollection: {
			unique("user_id", "user_id_unique"),
		},
		OrdersCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("user_created_index")},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", coll, err)
		}
	}
	return nil
}

func unique(field, name string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetName(name).SetUnique(true),
	}
}

package mongodb

import (
	"context"
	"time"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(collection *mongo.Collection) *MongoCartRepository {
	return &MongoCartRepository{collection: collection}
}

var _ contract.ICartRepository = (*MongoCartRepository)(nil)

func (r *MongoCartRepository) GetCartByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	var cart entity.Cart
	if err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart); err != nil {
		return nil, mapFindErr(err, contract.ErrCartNotFound)
	}
	return &cart, nil
}

// EnsureCart upserts an empty cart. A duplicate key from a concurrent upsert
// means the cart now exists, which is the goal.
func (r *MongoCartRepository) EnsureCart(ctx context.Context, cart *entity.Cart) error {
	update := bson.M{"$setOnInsert": bson.M{
		"_id":        cart.ID,
		"items":      bson.A{},
		"created_at": cart.CreatedAt,
		"updated_at": cart.UpdatedAt,
	}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"user_id": cart.UserID}, update, options.Update().SetUpsert(true))
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return err
	}
	return nil
}

// AddItem pushes item only if no line for the same product exists, in one
// conditional update.
func (r *MongoCartRepository) AddItem(ctx context.Context, userID string, item entity.CartItem) error {
	filter := bson.M{"user_id": userID, "items.product_id": bson.M{"$ne": item.ProductID}}
	update := bson.M{
		"$push": bson.M{"items": item},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if _, err := r.GetCartByUserID(ctx, userID); err != nil {
			return err
		}
		return contract.ErrCartItemExists
	}
	return nil
}

func (r *MongoCartRepository) IncrementItem(ctx context.Context, userID, productID string, delta int) error {
	filter := bson.M{"user_id": userID, "items.product_id": productID}
	update := bson.M{
		"$inc": bson.M{"items.$.quantity": delta},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return contract.ErrCartItemNotFound
	}
	return nil
}

func (r *MongoCartRepository) RemoveItem(ctx context.Context, userID, productID string) error {
	filter := bson.M{"user_id": userID, "items.product_id": productID}
	update := bson.M{
		"$pull": bson.M{"items": bson.M{"product_id": productID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return contract.ErrCartItemNotFound
	}
	return nil
}

// ClearCart empties the cart. Clearing an empty cart is a no-op.
func (r *MongoCartRepository) ClearCart(ctx context.Context, userID string) error {
	update := bson.M{"$set": bson.M{"items": bson.A{}, "updated_at": time.Now().UTC()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return contract.ErrCartNotFound
	}
	return nil
}

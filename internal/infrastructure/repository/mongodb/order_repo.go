package mongodb

import (
	"context"
	"time"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(collection *mongo.Collection) *MongoOrderRepository {
	return &MongoOrderRepository{collection: collection}
}

var _ contract.IOrderRepository = (*MongoOrderRepository)(nil)

func (r *MongoOrderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	_, err := r.collection.InsertOne(ctx, order)
	return mapWriteErr(err)
}

func (r *MongoOrderRepository) GetOrderByID(ctx context.Context, id string) (*entity.Order, error) {
	var o entity.Order
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		return nil, mapFindErr(err, contract.ErrOrderNotFound)
	}
	return &o, nil
}

// ListOrders returns newest first.
func (r *MongoOrderRepository) ListOrders(ctx context.Context, f entity.OrderListFilter) ([]*entity.Order, int64, error) {
	filter := bson.M{}
	if f.UserID != "" {
		filter["user_id"] = f.UserID
	}
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cur, err := r.collection.Find(ctx, filter, pageOptions(f.Page, f.Limit, "", "desc", nil))
	if err != nil {
		return nil, 0, err
	}
	var orders []*entity.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *MongoOrderRepository) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return contract.ErrOrderNotFound
	}
	return nil
}

func (r *MongoOrderRepository) DeleteOrder(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return contract.ErrOrderNotFound
	}
	return nil
}

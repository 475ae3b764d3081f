package mongodb

import (
	"context"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var productSortFields = map[string]string{
	"createdAt": "created_at",
	"price":     "price",
	"name":      "name",
	"sold":      "sold",
	"stock":     "stock",
}

type MongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(collection *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{collection: collection}
}

var _ contract.IProductRepository = (*MongoProductRepository)(nil)

func (r *MongoProductRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	_, err := r.collection.InsertOne(ctx, product)
	return mapWriteErr(err)
}

func (r *MongoProductRepository) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoProductRepository) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *MongoProductRepository) GetProductByName(ctx context.Context, name string) (*entity.Product, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoProductRepository) findOne(ctx context.Context, filter bson.M) (*entity.Product, error) {
	var p entity.Product
	if err := r.collection.FindOne(ctx, filter).Decode(&p); err != nil {
		return nil, mapFindErr(err, contract.ErrProductNotFound)
	}
	return &p, nil
}

func (r *MongoProductRepository) GetProductsByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var products []*entity.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) ListProducts(ctx context.Context, f entity.ProductListFilter) ([]*entity.Product, int64, error) {
	filter := bson.M{}
	if s := searchFilter(f.Search, "name", "slug", "category"); s != nil {
		filter = s
	}
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cur, err := r.collection.Find(ctx, filter, pageOptions(f.Page, f.Limit, f.SortBy, f.Order, productSortFields))
	if err != nil {
		return nil, 0, err
	}
	var products []*entity.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *MongoProductRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return mapWriteErr(err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrProductNotFound
	}
	return nil
}

func (r *MongoProductRepository) DeleteProduct(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return contract.ErrProductNotFound
	}
	return nil
}

// DecrementStock is guarded by stock >= qty so stock never goes negative.
func (r *MongoProductRepository) DecrementStock(ctx context.Context, id string, qty int) error {
	if qty <= 0 {
		return contract.ErrInvalidQuantity
	}
	filter := bson.M{"_id": id, "stock": bson.M{"$gte": qty}}
	update := bson.M{"$inc": bson.M{"stock": -qty, "sold": qty}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		n, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if n == 0 {
			return contract.ErrProductNotFound
		}
		return contract.ErrInsufficientStock
	}
	return nil
}

func (r *MongoProductRepository) IncrementStock(ctx context.Context, id string, qty int) error {
	if qty <= 0 {
		return contract.ErrInvalidQuantity
	}
	update := bson.M{"$inc": bson.M{"stock": qty, "sold": -qty}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return contract.ErrProductNotFound
	}
	return nil
}

func (r *MongoProductRepository) ReplaceAll(ctx context.Context, products []*entity.Product) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(products) == 0 {
		return nil
	}
	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return mapWriteErr(err)
}

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

type MongoCategoryRepository struct {
	collection *mongo.Collection
}

func NewMongoCategoryRepository(collection *mongo.Collection) *MongoCategoryRepository {
	return &MongoCategoryRepository{collection: collection}
}

var _ contract.ICategoryRepository = (*MongoCategoryRepository)(nil)

func (r *MongoCategoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	if category.Products == nil {
		category.Products = []string{}
	}
	_, err := r.collection.InsertOne(ctx, category)
	return mapWriteErr(err)
}

func (r *MongoCategoryRepository) GetCategoryByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoCategoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *MongoCategoryRepository) findOne(ctx context.Context, filter bson.M) (*entity.Category, error) {
	var c entity.Category
	if err := r.collection.FindOne(ctx, filter).Decode(&c); err != nil {
		return nil, mapFindErr(err, contract.ErrCategoryNotFound)
	}
	return &c, nil
}

func (r *MongoCategoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	cur, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var categories []*entity.Category
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MongoCategoryRepository) UpdateCategory(ctx context.Context, category *entity.Category) error {
	update := bson.M{"$set": bson.M{
		"name":        category.Name,
		"slug":        category.Slug,
		"description": category.Description,
		"updated_at":  category.UpdatedAt,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": category.ID}, update)
	if err != nil {
		return mapWriteErr(err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrCategoryNotFound
	}
	return nil
}

func (r *MongoCategoryRepository) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return contract.ErrCategoryNotFound
	}
	return nil
}

func (r *MongoCategoryRepository) AddProduct(ctx context.Context, categoryName, productID string) error {
	return r.updateProducts(ctx, categoryName, bson.M{"$addToSet": bson.M{"products": productID}})
}

func (r *MongoCategoryRepository) RemoveProduct(ctx context.Context, categoryName, productID string) error {
	return r.updateProducts(ctx, categoryName, bson.M{"$pull": bson.M{"products": productID}})
}

func (r *MongoCategoryRepository) updateProducts(ctx context.Context, name string, update bson.M) error {
	update["$set"] = bson.M{"updated_at": time.Now().UTC()}
	res, err := r.collection.UpdateOne(ctx, bson.M{"name": name}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return contract.ErrCategoryNotFound
	}
	return nil
}

func (r *MongoCategoryRepository) ReplaceAll(ctx context.Context, categories []*entity.Category) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(categories) == 0 {
		return nil
	}
	docs := make([]interface{}, len(categories))
	for i, c := range categories {
		if c.Products == nil {
			c.Products = []string{}
		}
		docs[i] = c
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return mapWriteErr(err)
}

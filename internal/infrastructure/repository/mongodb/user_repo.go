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

var userSortFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"fullName":  "full_name",
	"username":  "username",
	"email":     "email",
}

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	return mapWriteErr(err)
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var user entity.User
	if err := r.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, mapFindErr(err, contract.ErrUserNotFound)
	}
	return &user, nil
}

// UpdateUser updates an existing user and returns the updated user. The refresh
// token digest is owned by SetRefreshTokenHash/SwapRefreshTokenHash and is never
// written here.
func (r *MongoUserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"full_name":                 user.FullName,
		"username":                  user.Username,
		"email":                     user.Email,
		"avatar":                    user.Avatar,
		"password_hash":             user.PasswordHash,
		"role":                      user.Role,
		"is_account_confirmed":      user.IsAccountConfirmed,
		"is_banned":                 user.IsBanned,
		"confirmation_token_hash":   user.ConfirmationTokenHash,
		"reset_password_token_hash": user.ResetPasswordTokenHash,
		"change_email_token_hash":   user.ChangeEmailTokenHash,
		"temp_mail":                 user.TempMail,
		"updated_at":                user.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated entity.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": user.ID}, update, opts).Decode(&updated)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, contract.ErrDuplicateKey
		}
		return nil, mapFindErr(err, contract.ErrUserNotFound)
	}
	return &updated, nil
}

func (r *MongoUserRepository) SetRefreshTokenHash(ctx context.Context, id, hash string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"refresh_token_hash": hash}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return contract.ErrUserNotFound
	}
	return nil
}

// SwapRefreshTokenHash is a compare-and-swap on the stored digest.
func (r *MongoUserRepository) SwapRefreshTokenHash(ctx context.Context, id, oldHash, newHash string) error {
	filter := bson.M{"_id": id, "refresh_token_hash": oldHash}
	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"refresh_token_hash": newHash}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return contract.ErrStaleToken
	}
	return nil
}

func (r *MongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return contract.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) ListUsers(ctx context.Context, f entity.UserListFilter) ([]*entity.User, int64, error) {
	filter := bson.M{}
	if f.ExcludeRole != "" {
		filter["role"] = bson.M{"$ne": f.ExcludeRole}
	}
	if s := searchFilter(f.Search, "full_name", "email", "username"); s != nil {
		filter["$or"] = s["$or"]
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cur, err := r.collection.Find(ctx, filter, pageOptions(f.Page, f.Limit, f.SortBy, f.Order, userSortFields))
	if err != nil {
		return nil, 0, err
	}
	var users []*entity.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *MongoUserRepository) ReplaceAll(ctx context.Context, users []*entity.User) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(users) == 0 {
		return nil
	}
	docs := make([]interface{}, len(users))
	for i, u := range users {
		docs[i] = u
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return mapWriteErr(err)
}

package mongodb

import (
	"errors"
	"regexp"
	"strings"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// normalizePage clamps page and limit to sane bounds.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// pageOptions builds find options for a page sorted by field. Unknown sort keys
// fall back to created_at.
func pageOptions(page, limit int, sortBy, order string, allowed map[string]string) *options.FindOptions {
	page, limit = normalizePage(page, limit)
	field, ok := allowed[sortBy]
	if !ok {
		field = "created_at"
	}
	dir := -1
	if strings.EqualFold(order, "asc") {
		dir = 1
	}
	return options.Find().
		SetSort(bson.D{{Key: field, Value: dir}, {Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
}

// searchFilter matches term case-insensitively as a literal substring of any field.
func searchFilter(term string, fields ...string) bson.M {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	rx := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: rx})
	}
	return bson.M{"$or": or}
}

func mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return contract.ErrDuplicateKey
	}
	return err
}

func mapFindErr(err error, notFound error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFound
	}
	return err
}

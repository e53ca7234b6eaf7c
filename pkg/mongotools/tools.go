package mongotools

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/interviews/pkg/errors"
)

func SetAll(fieldKVs ...bson.M) bson.M {
	s := make(bson.M, len(fieldKVs))
	for _, kv := range fieldKVs {
		for k, v := range kv {
			s[k] = v
		}
	}

	return bson.M{"$set": s}
}

func All() bson.M {
	return bson.M{}
}

func Field[T any](field string, value T) bson.M {
	return bson.M{field: value}
}

// ObjectID parses a hex object id into an "_id" filter. A malformed id is
// reported as invalid input.
func ObjectID(hex string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil, errors.WithKind(errors.WrapFailf(err, "parse object id %q", hex), errors.KindInvalidInput)
	}

	return bson.M{"_id": oid}, nil
}

// SortDesc orders a Find by field, newest first.
func SortDesc(field string) *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: field, Value: -1}})
}

// ReturnAfter makes FindOneAndUpdate report the document as it is after the update.
func ReturnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// FilterFunc drains c into a non-nil slice, keeping items accepted by filterFunc.
// A nil filterFunc keeps everything.
func FilterFunc[T any](ctx context.Context, c *mongo.Cursor, filterFunc func(T) bool) ([]T, error) {
	defer c.Close(ctx)

	filtered := make([]T, 0)
	for c.Next(ctx) {
		var item T
		err := c.Decode(&item)
		if err != nil {
			return nil, errors.WrapFail(err, "decode item")
		}

		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered, c.Err()
}

// Classify tags err with the kind of store failure it represents.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.KindOf(err) != errors.KindUnknown {
		return err
	}

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return errors.WithKind(err, errors.KindNotFound)
	case mongo.IsNetworkError(err), mongo.IsTimeout(err), errors.Is(err, mongo.ErrClientDisconnected):
		return errors.WithKind(err, errors.KindStoreUnavailable)
	default:
		return err
	}
}

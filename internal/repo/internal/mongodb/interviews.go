package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/interviews/internal/repo/models"
	"github.com/nikmy/interviews/pkg/errors"
	mng "github.com/nikmy/interviews/pkg/mongotools"
)

func NewInterviews(coll *mongo.Collection) Interviews {
	return Interviews{coll: coll}
}

type Interviews struct {
	coll *mongo.Collection
}

func (m Interviews) List(ctx context.Context) ([]models.Interview, error) {
	c, err := m.coll.Find(ctx, mng.All(), mng.SortDesc(models.InterviewFieldCreatedAt))
	if err != nil {
		return nil, errors.WrapFail(mng.Classify(err), "find interviews")
	}

	all, err := mng.FilterFunc[models.Interview](ctx, c, nil)
	if err != nil {
		return nil, errors.WrapFail(mng.Classify(err), "read interviews")
	}

	return all, nil
}

func (m Interviews) Create(ctx context.Context, interview models.Interview) (*models.Interview, error) {
	interview.ID = primitive.NilObjectID

	r, err := m.coll.InsertOne(ctx, interview)
	if err != nil {
		return nil, errors.WrapFail(mng.Classify(err), "insert interview")
	}

	oid, ok := r.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, errors.Errorf("unexpected inserted id type %T", r.InsertedID)
	}

	interview.ID = oid
	return &interview, nil
}

func (m Interviews) SetStatus(
	ctx context.Context,
	id string,
	status models.InterviewStatus,
) (*models.Interview, error) {
	filter, err := mng.ObjectID(id)
	if err != nil {
		return nil, err
	}

	r := m.coll.FindOneAndUpdate(
		ctx,
		filter,
		mng.SetAll(mng.Field(models.InterviewFieldStatus, status)),
		mng.ReturnAfter(),
	)

	err = r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(mng.Classify(err), "update interview status")
	}

	var updated models.Interview
	err = r.Decode(&updated)
	if err != nil {
		return nil, errors.WrapFail(err, "decode updated interview")
	}

	return &updated, nil
}

func (m Interviews) Delete(ctx context.Context, id string) (bool, error) {
	filter, err := mng.ObjectID(id)
	if err != nil {
		return false, err
	}

	r, err := m.coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, errors.WrapFail(mng.Classify(err), "delete interview by id")
	}

	return r.DeletedCount == 1, nil
}

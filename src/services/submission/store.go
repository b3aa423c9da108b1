package submission

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-Yeoun-Survey/src/database"
	"Backend-Yeoun-Survey/src/models"
)

// Store is the remote document store for responses, keyed by user id.
// Get returns (nil, nil) when the user has not submitted.
type Store interface {
	Exists(ctx context.Context, userID string) (bool, error)
	Get(ctx context.Context, userID string) (*models.SurveyResponse, error)
	Put(ctx context.Context, resp *models.SurveyResponse) error
	List(ctx context.Context) ([]models.SurveyResponse, error)
}

const opTimeout = 5 * time.Second

type mongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{coll: db.Collection(database.ResponsesCollection)}
}

func (s *mongoStore) Exists(ctx context.Context, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	n, err := s.coll.CountDocuments(ctx, bson.M{"_id": userID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *mongoStore) Get(ctx context.Context, userID string) (*models.SurveyResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var resp models.SurveyResponse
	err := s.coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&resp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Put is a create-or-replace addressed by the user id, so a retried write
// overwrites instead of duplicating.
func (s *mongoStore) Put(ctx context.Context, resp *models.SurveyResponse) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": resp.UserID}, resp, options.Replace().SetUpsert(true))
	return err
}

// List scans all responses, newest submission first.
func (s *mongoStore) List(ctx context.Context) ([]models.SurveyResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	responses := []models.SurveyResponse{}
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

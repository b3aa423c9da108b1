package users

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

const opTimeout = 5 * time.Second

// Repository persists users and the admin audit log.
type Repository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	// Upsert creates the user on first login and refreshes the profile
	// fields afterwards. Admin flags and createdAt are never overwritten.
	Upsert(ctx context.Context, user models.User) (*models.User, bool, error)
	List(ctx context.Context) ([]models.User, error)
	SetAdmin(ctx context.Context, targetID, adminID string, at time.Time) error
	InsertAdminLog(ctx context.Context, entry models.AdminLog) error
}

type mongoRepository struct {
	users *mongo.Collection
	logs  *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{
		users: db.Collection(database.UsersCollection),
		logs:  db.Collection(database.AdminLogsCollection),
	}
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var user models.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoRepository) Upsert(ctx context.Context, user models.User) (*models.User, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"name":         user.Name,
			"email":        user.Email,
			"profileImage": user.ProfileImage,
			"provider":     user.Provider,
			"kakaoId":      user.KakaoID,
		},
		"$setOnInsert": bson.M{
			"isAdmin":   false,
			"createdAt": user.CreatedAt,
		},
	}
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": user.ID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, false, err
	}

	var stored models.User
	if err := r.users.FindOne(ctx, bson.M{"_id": user.ID}).Decode(&stored); err != nil {
		return nil, false, err
	}
	return &stored, res.UpsertedCount > 0, nil
}

// List returns admins first, then newest first.
func (r *mongoRepository) List(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{
		{Key: "isAdmin", Value: -1},
		{Key: "createdAt", Value: -1},
	})
	cursor, err := r.users.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := []models.User{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *mongoRepository) SetAdmin(ctx context.Context, targetID, adminID string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.users.UpdateOne(ctx, bson.M{"_id": targetID}, bson.M{"$set": bson.M{
		"isAdmin":    true,
		"promotedAt": at,
		"promotedBy": adminID,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *mongoRepository) InsertAdminLog(ctx context.Context, entry models.AdminLog) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.logs.InsertOne(ctx, entry)
	return err
}

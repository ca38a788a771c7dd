// File: database/repository/userdata/userdata_mongo.go
package userDataRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"attendai/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "user_data"

// MongoUserDataRepo implements UserDataRepository using MongoDB.
type MongoUserDataRepo struct {
	coll *mongo.Collection
}

// NewMongoUserDataRepo creates the repository and makes sure its indexes exist.
func NewMongoUserDataRepo(db *mongo.Database, logger *zap.Logger) UserDataRepository {
	repo := &MongoUserDataRepo{coll: db.Collection(collectionName)}
	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("user_data indexes not created", zap.Error(err))
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoUserDataRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoUserDataRepo) Get(ctx context.Context, userID string) (models.UserData, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	data := models.UserData{UserID: userID}
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&data)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return models.UserData{}, fmt.Errorf("failed to fetch data for user %s: %w", userID, err)
	}
	data.Normalize()
	return data, nil
}

// Merge is a single FindOneAndUpdate: $set carries only the provided fields
// and the document is created on first write.
func (r *MongoUserDataRepo) Merge(ctx context.Context, userID string, patch models.UserDataPatch) (models.UserData, error) {
	if patch.Empty() {
		return r.Get(ctx, userID)
	}

	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if patch.Schedule != nil {
		items := *patch.Schedule
		if items == nil {
			items = []models.ScheduleItem{}
		}
		set["schedule"] = items
	}
	if patch.Records != nil {
		recs := *patch.Records
		if recs == nil {
			recs = []models.AttendanceRecord{}
		}
		set["records"] = recs
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var data models.UserData
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"userId": userID}, bson.M{"$set": set}, opts).Decode(&data)
	if err != nil {
		return models.UserData{}, fmt.Errorf("failed to save data for user %s: %w", userID, err)
	}
	data.Normalize()
	return data, nil
}

func (r *MongoUserDataRepo) Clear(ctx context.Context, userID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("failed to clear data for user %s: %w", userID, err)
	}
	return nil
}

func (r *MongoUserDataRepo) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}

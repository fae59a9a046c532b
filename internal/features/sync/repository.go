package sync

import (
	"context"
	"time"

	"studio-crm/internal/common/models"
	"studio-crm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MirrorRepository is the remote per-user document contract: read the current
// value, merge-write a new one, and subscribe to changes. The store's own
// guarantees stay on the remote side.
type MirrorRepository interface {
	Read(ctx context.Context, userID string) (*models.CRMData, error)
	Upsert(ctx context.Context, userID string, data models.CRMData) error
	Watch(ctx context.Context, userID string) (<-chan models.CRMData, error)
}

type mirrorDocument struct {
	UserID    string         `bson:"_id"`
	Data      models.CRMData `bson:"data"`
	UpdatedAt time.Time      `bson:"updated_at"`
}

type MirrorRepositoryImpl struct {
	collection *mongo.Collection
}

func NewMirrorRepository(db *database.MongodbDB) MirrorRepository {
	if !db.Enabled() {
		return nil
	}
	return &MirrorRepositoryImpl{
		collection: db.DB.Collection("crm_data"),
	}
}

func (r *MirrorRepositoryImpl) Read(ctx context.Context, userID string) (*models.CRMData, error) {
	var doc mirrorDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &doc.Data, nil
}

func (r *MirrorRepositoryImpl) Upsert(ctx context.Context, userID string, data models.CRMData) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"data": data, "updated_at": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	return err
}

// Watch streams every remote replacement of the user's document. The channel
// closes when the stream ends; the consumer decides whether to resubscribe.
func (r *MirrorRepositoryImpl) Watch(ctx context.Context, userID string) (<-chan models.CRMData, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"documentKey._id": userID}}},
	}

	stream, err := r.collection.Watch(ctx, pipeline, options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		return nil, err
	}

	out := make(chan models.CRMData, 1)
	go func() {
		defer close(out)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var change struct {
				FullDocument mirrorDocument `bson:"fullDocument"`
			}
			if err := stream.Decode(&change); err != nil {
				continue
			}
			select {
			case out <- change.FullDocument.Data:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

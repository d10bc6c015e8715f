package availability

import (
	"context"
	"errors"
	"scheduling-service/internal/app/contracts"
	"scheduling-service/internal/app/models"
	"scheduling-service/internal/pkg/constvars"
	"scheduling-service/internal/pkg/exceptions"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AvailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewAvailabilityMongoRepository(db *mongo.Client, dbName string) contracts.AvailabilityRepository {
	return &AvailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAvailabilityBlocks),
	}
}

func (repo *AvailabilityMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "tutorId", Value: 1}, {Key: "start", Value: 1}}},
		{Keys: bson.D{{Key: "end", Value: 1}}},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *AvailabilityMongoRepository) CreateMany(ctx context.Context, blocks []models.AvailabilityBlock) error {
	if len(blocks) == 0 {
		return nil
	}
	documents := make([]interface{}, 0, len(blocks))
	for _, block := range blocks {
		documents = append(documents, block)
	}
	_, err := repo.Collection.InsertMany(ctx, documents)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *AvailabilityMongoRepository) FindByTutorIDInRange(ctx context.Context, tutorID string, from, to time.Time) ([]models.AvailabilityBlock, error) {
	filter := bson.M{
		"tutorId": tutorID,
		"start":   bson.M{"$lt": to},
		"end":     bson.M{"$gt": from},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	blocks := make([]models.AvailabilityBlock, 0)
	err = cursor.All(ctx, &blocks)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return blocks, nil
}

func (repo *AvailabilityMongoRepository) FindTutorIDsWithAvailability(ctx context.Context, from, to time.Time) ([]string, error) {
	filter := bson.M{
		"start": bson.M{"$lt": to},
		"end":   bson.M{"$gt": from},
	}
	values, err := repo.Collection.Distinct(ctx, "tutorId", filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	tutorIDs := make([]string, 0, len(values))
	for _, value := range values {
		if id, ok := value.(string); ok {
			tutorIDs = append(tutorIDs, id)
		}
	}
	sort.Strings(tutorIDs)
	return tutorIDs, nil
}

func (repo *AvailabilityMongoRepository) DeleteByID(ctx context.Context, tutorID, blockID string) (bool, error) {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": blockID, "tutorId": tutorID})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}

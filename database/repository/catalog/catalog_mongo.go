// File: database/repository/catalog/catalog_mongo.go
package catalogRepo

import (
	"context"
	"fmt"

	"labport/database"
	"labport/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoCatalogRepo struct {
	tests *mongo.Collection
	labs  *mongo.Collection
}

// NewMongoCatalogRepo constructs a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &mongoCatalogRepo{
		tests: db.Collection("tests"),
		labs:  db.Collection("labs"),
	}
}

// Catalog documents carry a language discriminator alongside the stable id.
type testDoc struct {
	Lang models.Language    `bson:"lang"`
	Test models.TestPackage `bson:"test"`
}

type labDoc struct {
	Lang models.Language   `bson:"lang"`
	Lab  models.LabPartner `bson:"lab"`
}

func (r *mongoCatalogRepo) GetTests(ctx context.Context, lang models.Language) ([]models.TestPackage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "test.id", Value: 1}})
	cur, err := r.tests.Find(ctx, bson.M{"lang": lang}, opts)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to fetch tests: %w", err)
	}
	defer cur.Close(ctx)

	var docs []testDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("catalog: failed to decode tests: %w", err)
	}
	tests := make([]models.TestPackage, 0, len(docs))
	for _, d := range docs {
		tests = append(tests, d.Test)
	}
	return tests, nil
}

func (r *mongoCatalogRepo) GetLabs(ctx context.Context, lang models.Language) ([]models.LabPartner, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lab.id", Value: 1}})
	cur, err := r.labs.Find(ctx, bson.M{"lang": lang}, opts)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to fetch labs: %w", err)
	}
	defer cur.Close(ctx)

	var docs []labDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("catalog: failed to decode labs: %w", err)
	}
	labs := make([]models.LabPartner, 0, len(docs))
	for _, d := range docs {
		labs = append(labs, d.Lab)
	}
	return labs, nil
}

func (r *mongoCatalogRepo) GetTestByID(ctx context.Context, lang models.Language, id string) (*models.TestPackage, error) {
	var doc testDoc
	err := r.tests.FindOne(ctx, bson.M{"lang": lang, "test.id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("catalog: test %q not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to fetch test %q: %w", id, err)
	}
	return &doc.Test, nil
}

func (r *mongoCatalogRepo) GetLabByID(ctx context.Context, lang models.Language, id string) (*models.LabPartner, error) {
	var doc labDoc
	err := r.labs.FindOne(ctx, bson.M{"lang": lang, "lab.id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("catalog: lab %q not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to fetch lab %q: %w", id, err)
	}
	return &doc.Lab, nil
}

// EnsureSeed upserts the static bilingual dataset so a fresh database serves
// the catalog immediately. Existing documents are overwritten, which keeps
// redeployments idempotent.
func EnsureSeed(ctx context.Context) error {
	db := database.DB()
	r := &mongoCatalogRepo{
		tests: db.Collection("tests"),
		labs:  db.Collection("labs"),
	}
	return r.seed(ctx)
}

func (r *mongoCatalogRepo) seed(ctx context.Context) error {
	for lang, tests := range SeedTests() {
		for _, t := range tests {
			filter := bson.M{"lang": lang, "test.id": t.ID}
			update := bson.M{"$set": testDoc{Lang: lang, Test: t}}
			if _, err := r.tests.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
				return fmt.Errorf("catalog: failed to seed test %q (%s): %w", t.ID, lang, err)
			}
		}
	}
	for lang, labs := range SeedLabs() {
		for _, l := range labs {
			filter := bson.M{"lang": lang, "lab.id": l.ID}
			update := bson.M{"$set": labDoc{Lang: lang, Lab: l}}
			if _, err := r.labs.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
				return fmt.Errorf("catalog: failed to seed lab %q (%s): %w", l.ID, lang, err)
			}
		}
	}
	return nil
}

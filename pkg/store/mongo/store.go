// Package mongo persists the canonical person list in MongoDB.
//
// Each person is one document keyed by person ID and tagged with the build
// that wrote it. Saving a build upserts its people and then deletes
// documents left by other builds, so the collection always mirrors the
// latest build while readers never see an empty collection mid-save.
//
//	s, err := mongo.Open(ctx, "mongodb://localhost:27017", "gedgraph", "people")
//	defer s.Close(ctx)
//	err = s.SavePeople(ctx, artifact.BuildID, artifact.People)
//	people, err := s.LoadPeople(ctx)
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	gerrors "github.com/matzehuels/gedgraph/pkg/errors"
	"github.com/matzehuels/gedgraph/pkg/genealogy"
)

// Defaults used when Open receives empty names.
const (
	DefaultDatabase   = "gedgraph"
	DefaultCollection = "people"
)

const connectTimeout = 5 * time.Second

// document is the stored form of one person.
type document struct {
	ID      string           `bson:"_id"`
	BuildID string           `bson:"buildId"`
	Seq     int              `bson:"seq"`
	Person  genealogy.Person `bson:"person"`
}

// Store reads and writes people in one collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Open connects to uri and pings the primary. Connection failures are
// UNAVAILABLE errors.
func Open(ctx context.Context, uri, database, collection string) (*Store, error) {
	if uri == "" {
		return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "mongo uri cannot be empty")
	}
	if database == "" {
		database = DefaultDatabase
	}
	if collection == "" {
		collection = DefaultCollection
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeUnavailable, err, "mongo connect")
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, gerrors.Wrap(gerrors.ErrCodeUnavailable, err, "mongo ping")
	}

	return &Store{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// SavePeople replaces the stored people with those of one build.
func (s *Store) SavePeople(ctx context.Context, buildID string, people []genealogy.Person) error {
	if buildID == "" {
		return gerrors.New(gerrors.ErrCodeInvalidInput, "build id cannot be empty")
	}

	docs := toDocuments(buildID, people)
	if len(docs) > 0 {
		models := make([]mongo.WriteModel, len(docs))
		for i, d := range docs {
			models[i] = mongo.NewReplaceOneModel().
				SetFilter(bson.D{{Key: "_id", Value: d.ID}}).
				SetReplacement(d).
				SetUpsert(true)
		}
		if _, err := s.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
			return fmt.Errorf("upsert people: %w", err)
		}
	}

	if _, err := s.coll.DeleteMany(ctx, staleFilter(buildID)); err != nil {
		return fmt.Errorf("delete stale people: %w", err)
	}
	return nil
}

// LoadPeople returns the stored people in source order.
func (s *Store) LoadPeople(ctx context.Context) ([]genealogy.Person, error) {
	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find people: %w", err)
	}
	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode people: %w", err)
	}
	return fromDocuments(docs), nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func toDocuments(buildID string, people []genealogy.Person) []document {
	docs := make([]document, len(people))
	for i, p := range people {
		docs[i] = document{ID: p.ID, BuildID: buildID, Seq: i, Person: p}
	}
	return docs
}

// fromDocuments restores people, replacing nil lists that BSON dropped
// with empty ones.
func fromDocuments(docs []document) []genealogy.Person {
	people := make([]genealogy.Person, len(docs))
	for i, d := range docs {
		p := d.Person
		for _, l := range []*[]string{&p.Parents, &p.Spouses, &p.Children, &p.Siblings, &p.Sources, &p.Tags} {
			if *l == nil {
				*l = []string{}
			}
		}
		people[i] = p
	}
	return people
}

func staleFilter(buildID string) bson.D {
	return bson.D{{Key: "buildId", Value: bson.D{{Key: "$ne", Value: buildID}}}}
}

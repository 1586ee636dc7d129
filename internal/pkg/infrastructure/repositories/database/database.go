package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/api-courses/internal/pkg/application/catalog"
	"github.com/diwise/api-courses/internal/pkg/domain"
	"github.com/diwise/api-courses/internal/pkg/infrastructure/repositories/persistence"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultDatabaseName     string        = "courses"
	DefaultCourseCollection string        = "courses"
	DefaultReferenceTTL     time.Duration = 600 * time.Second
)

//Datastore is an interface that is used to inject the database into different services to improve testability
//
//go:generate moq -rm -out datastore_mock.go . Datastore
type Datastore interface {
	Refresh(ctx context.Context, ds *catalog.Dataset) error
	CountCourses(ctx context.Context) (int64, error)

	ReadPage(ctx context.Context, skip, limit int64) ([]domain.Course, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	CreateCourse(ctx context.Context, patch domain.CoursePatch) (string, error)
	UpdateCourse(ctx context.Context, id string, patch domain.CoursePatch) error
	DeleteCourse(ctx context.Context, id string) error

	LookupReference(ctx context.Context, cat domain.Category, id int) (string, bool, error)

	Close(ctx context.Context) error
}

//ConnectorFunc is used to inject a database connection method into NewDatabaseConnection
type ConnectorFunc func(ctx context.Context) (*mongo.Database, error)

//NewMongoConnector connects to the MongoDB instance at url and selects the named database
func NewMongoConnector(url, databaseName string) ConnectorFunc {
	return func(ctx context.Context) (*mongo.Database, error) {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", databaseName, err)
		}

		if err = client.Ping(ctx, nil); err != nil {
			client.Disconnect(ctx)
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		return client.Database(databaseName), nil
	}
}

type Config struct {
	CourseCollection string
	ReferenceTTL     time.Duration
}

type myDB struct {
	db           *mongo.Database
	courses      *mongo.Collection
	references   map[domain.Category]*mongo.Collection
	referenceTTL time.Duration
}

//NewDatabaseConnection initializes a new connection to the database and wraps it in a Datastore
func NewDatabaseConnection(ctx context.Context, connect ConnectorFunc, cfg Config) (Datastore, error) {
	impl, err := connect(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.CourseCollection == "" {
		cfg.CourseCollection = DefaultCourseCollection
	}

	db := &myDB{
		db:           impl,
		courses:      impl.Collection(cfg.CourseCollection),
		references:   map[domain.Category]*mongo.Collection{},
		referenceTTL: cfg.ReferenceTTL,
	}

	for _, cat := range domain.Categories {
		db.references[cat] = impl.Collection(cat.Collection())
	}

	log := logging.GetFromContext(ctx)
	log.Info().Msgf("connected to database %s", impl.Name())

	return db, nil
}

func (db *myDB) Refresh(ctx context.Context, ds *catalog.Dataset) error {
	log := logging.GetFromContext(ctx)

	if err := db.courses.Drop(ctx); err != nil {
		return fmt.Errorf("failed to drop %s: %w", db.courses.Name(), err)
	}

	if len(ds.Courses) > 0 {
		docs := make([]any, 0, len(ds.Courses))
		for _, c := range ds.Courses {
			docs = append(docs, persistence.NewCourse(c))
		}

		if _, err := db.courses.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to insert courses: %w", err)
		}
	}

	for _, cat := range domain.Categories {
		if err := db.replaceReferences(ctx, cat, ds.References[cat]); err != nil {
			return err
		}
	}

	log.Debug().Msg("creating text index on CourseDescription")

	_, err := db.courses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "CourseDescription", Value: "text"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create text index: %w", err)
	}

	log.Info().Msgf("stored %d courses", len(ds.Courses))

	return nil
}

func (db *myDB) replaceReferences(ctx context.Context, cat domain.Category, refs []domain.Reference) error {
	collection := db.references[cat]

	if err := collection.Drop(ctx); err != nil {
		return fmt.Errorf("failed to drop %s: %w", collection.Name(), err)
	}

	if len(refs) > 0 {
		docs := make([]any, 0, len(refs))
		for _, r := range refs {
			docs = append(docs, persistence.NewReference(cat, r))
		}

		if _, err := collection.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", collection.Name(), err)
		}
	}

	if db.referenceTTL <= 0 {
		return nil
	}

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(db.referenceTTL.Seconds())),
	})
	if err != nil {
		return fmt.Errorf("failed to create expiry index on %s: %w", collection.Name(), err)
	}

	return nil
}

func (db *myDB) CountCourses(ctx context.Context) (int64, error) {
	return db.courses.EstimatedDocumentCount(ctx)
}

func (db *myDB) ReadPage(ctx context.Context, skip, limit int64) ([]domain.Course, error) {
	courses := []domain.Course{}

	// a zero limit means "no limit" to MongoDB
	if limit <= 0 {
		return courses, nil
	}

	cursor, err := db.courses.Find(ctx, bson.D{}, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to find courses: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		c := persistence.Course{}
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode course: %w", err)
		}
		courses = append(courses, c.ToDomain())
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

func (db *myDB) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	c := persistence.Course{}

	err = db.courses.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFoundError("Course not found")
		}
		return nil, fmt.Errorf("failed to find course %s: %w", id, err)
	}

	course := c.ToDomain()
	return &course, nil
}

func (db *myDB) CreateCourse(ctx context.Context, patch domain.CoursePatch) (string, error) {
	doc := persistence.NewCourseFromPatch(patch, time.Now().UTC())

	result, err := db.courses.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert course: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected id type %T", result.InsertedID)
	}

	return oid.Hex(), nil
}

func (db *myDB) UpdateCourse(ctx context.Context, id string, patch domain.CoursePatch) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	set := persistence.SetFields(patch)
	if len(set) == 0 {
		return domain.ValidationError("No data provided for update")
	}

	result, err := db.courses.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return fmt.Errorf("failed to update course %s: %w", id, err)
	}

	if result.MatchedCount != 1 {
		return domain.NotFoundError("Course not found")
	}

	return nil
}

func (db *myDB) DeleteCourse(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := db.courses.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("failed to delete course %s: %w", id, err)
	}

	if result.DeletedCount != 1 {
		return domain.NotFoundError("Course not found")
	}

	return nil
}

func (db *myDB) LookupReference(ctx context.Context, cat domain.Category, id int) (string, bool, error) {
	doc := bson.M{}

	err := db.references[cat].FindOne(ctx, bson.D{{Key: cat.IDField(), Value: id}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to look up %s %d: %w", cat, id, err)
	}

	value, _ := doc[cat.Column()].(string)

	return value, true, nil
}

func (db *myDB) Close(ctx context.Context) error {
	return db.db.Client().Disconnect(ctx)
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ValidationError("Invalid course ID")
	}
	return oid, nil
}

// IsValidID reports whether id is a well formed course identifier.
func IsValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

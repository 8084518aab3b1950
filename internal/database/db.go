package database

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Error taxonomy shared by every handler. Handlers map these to HTTP
// statuses; nothing below this package retries.
var (
	// ErrNotConfigured means the backend was never connected (missing env
	// config or failed startup ping). Every public operation checks this
	// first instead of dereferencing a nil connection.
	ErrNotConfigured = errors.New("database not configured")

	// ErrInvalidID means the supplied id is not a valid ObjectID hex string.
	ErrInvalidID = errors.New("invalid document id")

	// ErrNotFound means the id was well-formed but no document has it.
	ErrNotFound = errors.New("document not found")
)

const connectTimeout = 10 * time.Second

// Mongo is the single process-wide gateway to the document store. A Mongo
// with a nil db is a valid, detectable "not configured" state: the process
// keeps serving and every storage call fails fast with ErrNotConfigured.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect builds the gateway from DATABASE_URL and DATABASE_NAME. Missing
// config or an unreachable backend is a warning, not a fatal: the /test
// endpoint must be able to report the broken state.
func Connect() *Mongo {
	uri := os.Getenv("DATABASE_URL")
	name := os.Getenv("DATABASE_NAME")
	if uri == "" || name == "" {
		log.Println("⚠️  DATABASE_URL or DATABASE_NAME not set, storage disabled")
		return &Mongo{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Printf("⚠️  Failed to connect to MongoDB: %v", err)
		return &Mongo{}
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("⚠️  MongoDB unreachable: %v", err)
		_ = client.Disconnect(context.Background())
		return &Mongo{}
	}

	log.Println("✅ MongoDB connection established")
	return &Mongo{client: client, db: client.Database(name)}
}

// Configured reports whether the backend connection was established at
// startup.
func (m *Mongo) Configured() bool {
	return m != nil && m.db != nil
}

// Name returns the configured database name, or "" when unconfigured.
func (m *Mongo) Name() string {
	if !m.Configured() {
		return ""
	}
	return m.db.Name()
}

// Insert stores a document in the named collection and returns its assigned
// id as a hex string.
func (m *Mongo) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if !m.Configured() {
		return "", ErrNotConfigured
	}
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// Find returns up to limit documents matching filter, in storage order (no
// explicit sort). No matches yields an empty slice, never an error. Every
// returned document is normalized (see normalize.go).
func (m *Mongo) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if !m.Configured() {
		return nil, ErrNotConfigured
	}
	cur, err := m.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i] = Normalize(docs[i])
	}
	return docs, nil
}

// FindByID looks up a single document. A malformed id fails with
// ErrInvalidID; a well-formed but unassigned id fails with ErrNotFound.
func (m *Mongo) FindByID(ctx context.Context, collection, id string) (bson.M, error) {
	if !m.Configured() {
		return nil, ErrNotConfigured
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var doc bson.M
	err = m.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return Normalize(doc), nil
}

// Collections lists the collection names in the configured database. Used
// only by the diagnostic endpoint.
func (m *Mongo) Collections(ctx context.Context) ([]string, error) {
	if !m.Configured() {
		return nil, ErrNotConfigured
	}
	return m.db.ListCollectionNames(ctx, bson.M{})
}

// Close disconnects the client at process shutdown.
func (m *Mongo) Close(ctx context.Context) {
	if m == nil || m.client == nil {
		return
	}
	if err := m.client.Disconnect(ctx); err != nil {
		log.Printf("⚠️  MongoDB disconnect: %v", err)
	}
}

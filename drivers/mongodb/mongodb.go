package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/gridbase-inc/citysift/constants"
	"github.com/gridbase-inc/citysift/drivers/abstract"
	"github.com/gridbase-inc/citysift/types"
	"github.com/gridbase-inc/citysift/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB reads city documents from one collection, ordered by id so
// grouping stays reproducible across runs.
type MongoDB struct {
	config *Config
	client *mongo.Client
}

// cityDocument keeps the loosely typed fields loose; BSON cannot tell an
// absent field from an explicit null, both normalize to absent.
type cityDocument struct {
	ID         int64   `bson:"id"`
	City       string  `bson:"city"`
	CityASCII  string  `bson:"city_ascii"`
	Lat        float64 `bson:"lat"`
	Lng        float64 `bson:"lng"`
	Country    string  `bson:"country"`
	AdminName  any     `bson:"admin_name,omitempty"`
	Capital    any     `bson:"capital,omitempty"`
	Population any     `bson:"population,omitempty"`
}

func (d cityDocument) toCity() types.City {
	return types.City{
		ID:         d.ID,
		Name:       d.City,
		NameASCII:  d.CityASCII,
		Lat:        d.Lat,
		Lng:        d.Lng,
		Country:    d.Country,
		AdminName:  rawValue(d.AdminName),
		Capital:    rawValue(d.Capital),
		Population: rawValue(d.Population),
	}
}

func rawValue(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}

// config reference; must be pointer
func (m *MongoDB) GetConfigRef() abstract.Config {
	m.config = &Config{}
	return m.config
}

func (m *MongoDB) Spec() any {
	return Config{}
}

func (m *MongoDB) Type() string {
	return string(types.MongoDBSource)
}

func (m *MongoDB) Setup(ctx context.Context) error {
	opts := options.Client()
	opts.ApplyURI(m.config.URI())
	opts.SetCompressors([]string{"snappy"})

	conn, err := mongo.Connect(ctx, opts)
	if err != nil {
		return err
	}
	m.client = conn

	return utils.RetryExec(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		return conn.Ping(pingCtx, opts.ReadPreference)
	}, m.config.RetryCount, constants.DefaultRetryTimeout)
}

func (m *MongoDB) Load(ctx context.Context) ([]types.City, error) {
	collection := m.client.Database(m.config.Database).Collection(m.config.Collection)

	cursor, err := collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s.%s: %s", m.config.Database, m.config.Collection, err)
	}
	defer cursor.Close(ctx)

	var cities []types.City
	for cursor.Next(ctx) {
		var doc cityDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode city document: %s", err)
		}
		cities = append(cities, doc.toCity())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor failed on %s.%s: %s", m.config.Database, m.config.Collection, err)
	}

	return cities, nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}

func init() {
	abstract.RegisteredDrivers[types.MongoDBSource] = func() abstract.Driver {
		return new(MongoDB)
	}
}

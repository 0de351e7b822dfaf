package dao

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/wpppc/checkout-client-api/config"
	"github.com/wpppc/checkout-client-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client
var clientOnce sync.Once

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoClient(mongoDBURL string) *mongo.Client {
	clientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var err error
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(mongoDBURL))
		if err != nil {
			log.Error(fmt.Errorf("error connecting to mongodb: %s", err))
			return
		}

		if err = client.Ping(ctx, nil); err != nil {
			log.Error(fmt.Errorf("error pinging mongodb: %s", err))
		}
	})
	return client
}

// NewMongoService returns a MongoService backed by the configured database
func NewMongoService(cfg *config.Config) *MongoService {
	database := getMongoClient(cfg.MongoDBURL).Database(cfg.Database)
	return &MongoService{
		db:                database,
		CollectionName:    cfg.Collection,
		CartsCollection:   cfg.CartsCollection,
		ServersCollection: cfg.ServersCollection,
		ZonesCollection:   cfg.ZonesCollection,
	}
}

// MongoService is a MongoDB implementation of the DAO
type MongoService struct {
	db                MongoDatabaseInterface
	CollectionName    string
	CartsCollection   string
	ServersCollection string
	ZonesCollection   string
}

// CreateOrderResource writes a new order resource to the DB
func (m *MongoService) CreateOrderResource(order *models.OrderResourceDB) error {
	collection := m.db.Collection(m.CollectionName)
	_, err := collection.InsertOne(context.Background(), order)
	return err
}

// GetOrderResource gets an order resource from the DB.
// If the order is not found, nil is returned with no error.
func (m *MongoService) GetOrderResource(id int64) (*models.OrderResourceDB, error) {
	var resource models.OrderResourceDB

	collection := m.db.Collection(m.CollectionName)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	if err = dbResource.Decode(&resource); err != nil {
		return nil, err
	}

	return &resource, nil
}

// SaveOrderResource replaces the stored order resource with the supplied one
func (m *MongoService) SaveOrderResource(order *models.OrderResourceDB) error {
	collection := m.db.Collection(m.CollectionName)
	_, err := collection.ReplaceOne(context.Background(), bson.M{"_id": order.ID}, order)
	return err
}

// NextOrderID allocates the next order identifier from the counters document
func (m *MongoService) NextOrderID() (int64, error) {
	collection := m.db.Collection(m.CollectionName + "_counters")

	var counter struct {
		Seq int64 `bson:"seq"`
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := collection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": "order_id"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("error allocating order id: %w", err)
	}

	return counter.Seq, nil
}

// GetCartResource gets the session cart from the DB.
// If no cart exists for the session, nil is returned with no error.
func (m *MongoService) GetCartResource(sessionID string) (*models.CartResourceDB, error) {
	var resource models.CartResourceDB

	collection := m.db.Collection(m.CartsCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": sessionID})

	err := dbResource.Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	if err = dbResource.Decode(&resource); err != nil {
		return nil, err
	}

	return &resource, nil
}

// EmptyCartResource removes every line item from the session cart
func (m *MongoService) EmptyCartResource(sessionID string) error {
	collection := m.db.Collection(m.CartsCollection)
	update := bson.M{"$set": bson.M{"items": []models.CartItemDB{}, "fees": []models.CartFeeDB{}, "coupons": []models.CartCouponDB{}}}
	_, err := collection.UpdateOne(context.Background(), bson.M{"_id": sessionID}, update)
	return err
}

// GetProxyServer gets a proxy server descriptor from the DB.
// If the server is not found, nil is returned with no error.
func (m *MongoService) GetProxyServer(id int) (*models.ProxyServerDB, error) {
	var resource models.ProxyServerDB

	collection := m.db.Collection(m.ServersCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	if err = dbResource.Decode(&resource); err != nil {
		return nil, err
	}

	return &resource, nil
}

// ListProxyServers returns every configured proxy server descriptor
func (m *MongoService) ListProxyServers() ([]models.ProxyServerDB, error) {
	collection := m.db.Collection(m.ServersCollection)

	cursor, err := collection.Find(context.Background(), bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	var servers []models.ProxyServerDB
	if err = cursor.All(context.Background(), &servers); err != nil {
		return nil, err
	}

	return servers, nil
}

// UpdateServerUsage stores the accumulated usage amount for a proxy server
func (m *MongoService) UpdateServerUsage(id int, usage string) error {
	collection := m.db.Collection(m.ServersCollection)
	_, err := collection.UpdateOne(context.Background(), bson.M{"_id": id}, bson.M{"$set": bson.M{"usage": usage}})
	return err
}

// GetShippingZones returns every shipping zone in evaluation order
func (m *MongoService) GetShippingZones() ([]models.ShippingZoneDB, error) {
	collection := m.db.Collection(m.ZonesCollection)

	cursor, err := collection.Find(context.Background(), bson.M{}, options.Find().SetSort(bson.M{"order": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	var zones []models.ShippingZoneDB
	if err = cursor.All(context.Background(), &zones); err != nil {
		return nil, err
	}

	return zones, nil
}

package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hunargaatha-storefront/internal/domain"
)

const collectionName = "products"

type mongoRepo struct {
	collection *mongo.Collection
	logger     *log.Logger
}

func NewMongo(db *mongo.Database, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &mongoRepo{collection: db.Collection(collectionName), logger: logger}
}

// productDoc is the stored shape. Prices are plain numbers in the catalog
// documents and converted to decimals at the boundary.
type productDoc struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	Description   string    `bson:"description,omitempty"`
	Price         float64   `bson:"price"`
	OriginalPrice float64   `bson:"original_price,omitempty"`
	Category      string    `bson:"category"`
	Tags          []string  `bson:"tags,omitempty"`
	InStock       bool      `bson:"in_stock"`
	IsNew         bool      `bson:"is_new,omitempty"`
	Rating        float64   `bson:"rating,omitempty"`
	Reviews       int       `bson:"reviews,omitempty"`
	Discount      int       `bson:"discount,omitempty"`
	Image         string    `bson:"image,omitempty"`
	Size          string    `bson:"size,omitempty"`
	Artisan       string    `bson:"artisan,omitempty"`
	District      string    `bson:"district,omitempty"`
	CreatedAt     time.Time `bson:"created_at,omitempty"`
}

func (r *mongoRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	var result []domain.Product
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		result = append(result, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		r.logger.Printf("product repo: list cursor error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list count=%d", len(result))
	return result, nil
}

func (r *mongoRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var doc productDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Printf("product repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, fmt.Errorf("get product: %w", err)
	}
	p := doc.toDomain()
	return &p, nil
}

func (r *mongoRepo) Upsert(ctx context.Context, product domain.Product) error {
	doc := fromDomain(product)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	filter := bson.M{"_id": doc.ID}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		r.logger.Printf("product repo: upsert id=%s error=%v", doc.ID, err)
		return fmt.Errorf("upsert product: %w", err)
	}
	r.logger.Printf("product repo: upserted id=%s", doc.ID)
	return nil
}

func (d productDoc) toDomain() domain.Product {
	return domain.Product{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		Price:         decimal.NewFromFloat(d.Price),
		OriginalPrice: decimal.NewFromFloat(d.OriginalPrice),
		Category:      d.Category,
		Tags:          d.Tags,
		InStock:       d.InStock,
		IsNew:         d.IsNew,
		Rating:        d.Rating,
		Reviews:       d.Reviews,
		Discount:      d.Discount,
		Image:         d.Image,
		Size:          d.Size,
		Artisan:       d.Artisan,
		District:      d.District,
		CreatedAt:     d.CreatedAt,
	}
}

func fromDomain(p domain.Product) productDoc {
	price, _ := p.Price.Float64()
	originalPrice, _ := p.OriginalPrice.Float64()
	return productDoc{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         price,
		OriginalPrice: originalPrice,
		Category:      p.Category,
		Tags:          p.Tags,
		InStock:       p.InStock,
		IsNew:         p.IsNew,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Discount:      p.Discount,
		Image:         p.Image,
		Size:          p.Size,
		Artisan:       p.Artisan,
		District:      p.District,
		CreatedAt:     p.CreatedAt,
	}
}

package databases

// go generate: mockery --name ConsultationDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drepanocare/drepano-care-api/models"
)

const consultationCollection = "consultations"

// ConsultationDatabase contains the methods to use with the consultation database
type ConsultationDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.ConsultationData, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.ConsultationData, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) error
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) error
}

type consultationDatabase struct {
	db DatabaseHelper
}

// NewConsultationDatabase initializes a new instance of consultation database with the provided db connection
func NewConsultationDatabase(db DatabaseHelper) ConsultationDatabase {
	return &consultationDatabase{
		db: db,
	}
}

func (c *consultationDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.ConsultationData, error) {
	consultation := &models.ConsultationData{}
	err := c.db.Collection(consultationCollection).FindOne(ctx, filter, opts...).Decode(&consultation)
	if err != nil {
		return nil, err
	}
	return consultation, nil
}

func (c *consultationDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ConsultationData, error) {
	var consultations []models.ConsultationData
	err := c.db.Collection(consultationCollection).Find(ctx, filter, opts...).Decode(&consultations)
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

func (c *consultationDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := c.db.Collection(consultationCollection).InsertOne(ctx, document, opts...)
	return res, nil
}

func (c *consultationDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	return c.db.Collection(consultationCollection).UpdateOne(ctx, filter, update, opts...)
}

func (c *consultationDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(consultationCollection).DeleteOne(ctx, filter, opts...)
}

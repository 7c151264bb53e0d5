package databases

// go generate: mockery --name FollowUpDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drepanocare/drepano-care-api/models"
)

const followUpCollection = "followups"

// FollowUpDatabase contains the methods to use with the follow-up database
type FollowUpDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.FollowUpData, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.FollowUpData, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) error
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) error
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
}

type followUpDatabase struct {
	db DatabaseHelper
}

// NewFollowUpDatabase initializes a new instance of follow-up database with the provided db connection
func NewFollowUpDatabase(db DatabaseHelper) FollowUpDatabase {
	return &followUpDatabase{
		db: db,
	}
}

func (f *followUpDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.FollowUpData, error) {
	followUp := &models.FollowUpData{}
	err := f.db.Collection(followUpCollection).FindOne(ctx, filter, opts...).Decode(&followUp)
	if err != nil {
		return nil, err
	}
	return followUp, nil
}

func (f *followUpDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.FollowUpData, error) {
	var followUps []models.FollowUpData
	err := f.db.Collection(followUpCollection).Find(ctx, filter, opts...).Decode(&followUps)
	if err != nil {
		return nil, err
	}
	return followUps, nil
}

func (f *followUpDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := f.db.Collection(followUpCollection).InsertOne(ctx, document, opts...)
	return res, nil
}

func (f *followUpDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	return f.db.Collection(followUpCollection).UpdateOne(ctx, filter, update, opts...)
}

func (f *followUpDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return f.db.Collection(followUpCollection).DeleteOne(ctx, filter, opts...)
}

func (f *followUpDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return f.db.Collection(followUpCollection).CountDocuments(ctx, filter, opts...)
}

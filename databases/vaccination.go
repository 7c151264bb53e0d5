package databases

// go generate: mockery --name VaccinationDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drepanocare/drepano-care-api/models"
)

const vaccinationCollection = "vaccinations"

// VaccinationDatabase contains the methods to use with the vaccination database
type VaccinationDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.VaccinationRecord, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.VaccinationRecord, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) error
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) error
}

type vaccinationDatabase struct {
	db DatabaseHelper
}

// NewVaccinationDatabase initializes a new instance of vaccination database with the provided db connection
func NewVaccinationDatabase(db DatabaseHelper) VaccinationDatabase {
	return &vaccinationDatabase{
		db: db,
	}
}

func (v *vaccinationDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.VaccinationRecord, error) {
	vaccination := &models.VaccinationRecord{}
	err := v.db.Collection(vaccinationCollection).FindOne(ctx, filter, opts...).Decode(&vaccination)
	if err != nil {
		return nil, err
	}
	return vaccination, nil
}

func (v *vaccinationDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.VaccinationRecord, error) {
	var vaccinations []models.VaccinationRecord
	err := v.db.Collection(vaccinationCollection).Find(ctx, filter, opts...).Decode(&vaccinations)
	if err != nil {
		return nil, err
	}
	return vaccinations, nil
}

func (v *vaccinationDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := v.db.Collection(vaccinationCollection).InsertOne(ctx, document, opts...)
	return res, nil
}

func (v *vaccinationDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	return v.db.Collection(vaccinationCollection).UpdateOne(ctx, filter, update, opts...)
}

func (v *vaccinationDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return v.db.Collection(vaccinationCollection).DeleteOne(ctx, filter, opts...)
}

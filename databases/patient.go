package databases

// go generate: mockery --name PatientDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drepanocare/drepano-care-api/models"
)

const patientCollection = "patients"

// PatientDatabase contains the methods to use with the patient database
type PatientDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.PatientProfile, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.PatientProfile, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) error
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) error
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
}

type patientDatabase struct {
	db DatabaseHelper
}

// NewPatientDatabase initializes a new instance of patient database with the provided db connection
func NewPatientDatabase(db DatabaseHelper) PatientDatabase {
	return &patientDatabase{
		db: db,
	}
}

func (p *patientDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.PatientProfile, error) {
	patient := &models.PatientProfile{}
	err := p.db.Collection(patientCollection).FindOne(ctx, filter, opts...).Decode(&patient)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (p *patientDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.PatientProfile, error) {
	var patients []models.PatientProfile
	err := p.db.Collection(patientCollection).Find(ctx, filter, opts...).Decode(&patients)
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (p *patientDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := p.db.Collection(patientCollection).InsertOne(ctx, document, opts...)
	return res, nil
}

func (p *patientDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	return p.db.Collection(patientCollection).UpdateOne(ctx, filter, update, opts...)
}

func (p *patientDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return p.db.Collection(patientCollection).DeleteOne(ctx, filter, opts...)
}

func (p *patientDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return p.db.Collection(patientCollection).CountDocuments(ctx, filter, opts...)
}

package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/drepanocare/drepano-care-api/api"
	"github.com/drepanocare/drepano-care-api/config"
	"github.com/drepanocare/drepano-care-api/databases"
	"github.com/drepanocare/drepano-care-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewUserDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	u := User{DB: databases.NewUserDatabase(a.dbHelper)}
	p := Patient{DB: databases.NewPatientDatabase(a.dbHelper)}
	c := Consultation{DB: databases.NewConsultationDatabase(a.dbHelper), PDB: databases.NewPatientDatabase(a.dbHelper)}
	f := FollowUp{DB: databases.NewFollowUpDatabase(a.dbHelper), PDB: databases.NewPatientDatabase(a.dbHelper)}
	v := Vaccination{DB: databases.NewVaccinationDatabase(a.dbHelper)}
	s := Summary{
		PDB: databases.NewPatientDatabase(a.dbHelper),
		CDB: databases.NewConsultationDatabase(a.dbHelper),
		FDB: databases.NewFollowUpDatabase(a.dbHelper),
		VDB: databases.NewVaccinationDatabase(a.dbHelper),
	}
	documentHandler := DocumentHandler{}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	// live record update feed for clinic dashboards
	r.HandleFunc("/ws/updates", HandleUpdatesWebSocket)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(30 * time.Second))

	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")
	apiCreate.Handle("/auth/login", http.HandlerFunc(u.UserLoginHandler)).Methods("POST")
	apiCreate.Handle("/users/register", http.HandlerFunc(u.UserRegisterHandler)).Methods("POST")

	apiCreate.Handle("/patients", api.Middleware(http.HandlerFunc(p.PatientHandler))).Methods("GET")
	apiCreate.Handle("/patients", api.Middleware(http.HandlerFunc(p.CreatePatientHandler))).Methods("POST")
	apiCreate.Handle("/patients/search/{query}", api.Middleware(http.HandlerFunc(p.PatientsSearchHandler))).Methods("GET")
	apiCreate.Handle("/patients/{patient_id}", api.Middleware(http.HandlerFunc(p.PatientByIDHandler))).Methods("GET")
	apiCreate.Handle("/patients/{patient_id}", api.Middleware(http.HandlerFunc(p.UpdatePatientHandler))).Methods("PUT")
	apiCreate.Handle("/patients/{patient_id}", api.Middleware(http.HandlerFunc(p.DeletePatientHandler))).Methods("DELETE")
	apiCreate.Handle("/patients/{patient_id}/summary", api.Middleware(http.HandlerFunc(s.PatientSummaryHandler))).Methods("GET")

	apiCreate.Handle("/consultations", api.Middleware(http.HandlerFunc(c.ConsultationHandler))).Methods("GET")
	apiCreate.Handle("/consultations", api.Middleware(http.HandlerFunc(c.CreateConsultationHandler))).Methods("POST")
	apiCreate.Handle("/consultations/patient/{patient_id}", api.Middleware(http.HandlerFunc(c.ConsultationsByPatientIDHandler))).Methods("GET")
	apiCreate.Handle("/consultations/{consultation_id}", api.Middleware(http.HandlerFunc(c.ConsultationByIDHandler))).Methods("GET")
	apiCreate.Handle("/consultations/{consultation_id}", api.Middleware(http.HandlerFunc(c.UpdateConsultationHandler))).Methods("PUT")
	apiCreate.Handle("/consultations/{consultation_id}", api.Middleware(http.HandlerFunc(c.DeleteConsultationHandler))).Methods("DELETE")

	apiCreate.Handle("/follow-ups", api.Middleware(http.HandlerFunc(f.FollowUpHandler))).Methods("GET")
	apiCreate.Handle("/follow-ups", api.Middleware(http.HandlerFunc(f.CreateFollowUpHandler))).Methods("POST")
	apiCreate.Handle("/follow-ups/patient/{patient_id}/next-number", api.Middleware(http.HandlerFunc(f.FollowUpNextNumberHandler))).Methods("GET")
	apiCreate.Handle("/follow-ups/patient/{patient_id}", api.Middleware(http.HandlerFunc(f.FollowUpsByPatientIDHandler))).Methods("GET")
	apiCreate.Handle("/follow-ups/{follow_up_id}", api.Middleware(http.HandlerFunc(f.FollowUpByIDHandler))).Methods("GET")
	apiCreate.Handle("/follow-ups/{follow_up_id}", api.Middleware(http.HandlerFunc(f.UpdateFollowUpHandler))).Methods("PUT")
	apiCreate.Handle("/follow-ups/{follow_up_id}", api.Middleware(http.HandlerFunc(f.DeleteFollowUpHandler))).Methods("DELETE")

	apiCreate.Handle("/vaccinations/patient/{patient_id}", api.Middleware(http.HandlerFunc(v.VaccinationByPatientHandler))).Methods("GET")
	apiCreate.Handle("/vaccinations/patient/{patient_id}", api.Middleware(http.HandlerFunc(v.UpsertVaccinationHandler))).Methods("PUT")
	apiCreate.Handle("/vaccinations/schedule", api.Middleware(http.HandlerFunc(v.ScheduleHandler))).Methods("GET")

	apiCreate.Handle("/documents/generate-signature", api.Middleware(http.HandlerFunc(documentHandler.GenerateSignature))).Methods("POST")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("drepano-care-api has connected to the database")

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// DB exposes the database helper so main can hand it to the scheduler
func (a *App) DB() databases.DatabaseHelper {
	return a.dbHelper
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

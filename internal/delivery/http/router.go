package http

import (
	"net/http"

	"simlab/internal/delivery/http/handler"
	"simlab/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	patientHandler    *handler.PatientHandler
	examHandler       *handler.ExamHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	examHandler *handler.ExamHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		patientHandler:    patientHandler,
		examHandler:       examHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patient routes
	r.router.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	r.router.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Exam routes
	r.router.HandleFunc("/exams", r.examHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/exams", r.examHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/exams/{id}", r.examHandler.Get).Methods(http.MethodGet)
	r.router.HandleFunc("/exams/{id}", r.examHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/exams/{id}", r.examHandler.Delete).Methods(http.MethodDelete)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

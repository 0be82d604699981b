package http

import (
	"net/http"

	"hospital-sedes-backend/internal/delivery/http/handler"
	"hospital-sedes-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	pacienteHandler     *handler.PacienteHandler
	doctorHandler       *handler.DoctorHandler
	consultorioHandler  *handler.ConsultorioHandler
	citaHandler         *handler.CitaHandler
	historialHandler    *handler.HistorialHandler
	especialidadHandler *handler.EspecialidadHandler
	centroHandler       *handler.CentroHandler
	statusHandler       *handler.StatusHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	requestLogger       *middleware.RequestLogger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	pacienteHandler *handler.PacienteHandler,
	doctorHandler *handler.DoctorHandler,
	consultorioHandler *handler.ConsultorioHandler,
	citaHandler *handler.CitaHandler,
	historialHandler *handler.HistorialHandler,
	especialidadHandler *handler.EspecialidadHandler,
	centroHandler *handler.CentroHandler,
	statusHandler *handler.StatusHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestLogger *middleware.RequestLogger,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		pacienteHandler:     pacienteHandler,
		doctorHandler:       doctorHandler,
		consultorioHandler:  consultorioHandler,
		citaHandler:         citaHandler,
		historialHandler:    historialHandler,
		especialidadHandler: especialidadHandler,
		centroHandler:       centroHandler,
		statusHandler:       statusHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		requestLogger:       requestLogger,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api.HandleFunc("/auth/login", r.authHandler.Login).Methods(http.MethodPost)

	crud := func(prefix string, list, get, create, update, del http.HandlerFunc) {
		api.HandleFunc(prefix, list).Methods(http.MethodGet)
		api.HandleFunc(prefix, create).Methods(http.MethodPost)
		api.HandleFunc(prefix+"/{id}", get).Methods(http.MethodGet)
		api.HandleFunc(prefix+"/{id}", update).Methods(http.MethodPut)
		api.HandleFunc(prefix+"/{id}", del).Methods(http.MethodDelete)
	}

	crud("/pacientes", r.pacienteHandler.List, r.pacienteHandler.Get, r.pacienteHandler.Create, r.pacienteHandler.Update, r.pacienteHandler.Delete)
	crud("/doctores", r.doctorHandler.List, r.doctorHandler.Get, r.doctorHandler.Create, r.doctorHandler.Update, r.doctorHandler.Delete)
	crud("/consultorios", r.consultorioHandler.List, r.consultorioHandler.Get, r.consultorioHandler.Create, r.consultorioHandler.Update, r.consultorioHandler.Delete)
	crud("/citas", r.citaHandler.List, r.citaHandler.Get, r.citaHandler.Create, r.citaHandler.Update, r.citaHandler.Delete)
	crud("/historial", r.historialHandler.List, r.historialHandler.Get, r.historialHandler.Create, r.historialHandler.Update, r.historialHandler.Delete)
	crud("/especialidades", r.especialidadHandler.List, r.especialidadHandler.Get, r.especialidadHandler.Create, r.especialidadHandler.Update, r.especialidadHandler.Delete)
	crud("/centros", r.centroHandler.List, r.centroHandler.Get, r.centroHandler.Create, r.centroHandler.Update, r.centroHandler.Delete)

	api.HandleFunc("/_status", r.statusHandler.Probe).Methods(http.MethodGet)
	api.HandleFunc("/_inspect/{table}", r.statusHandler.Inspect).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.authMiddleware.Resolve)
	r.router.Use(r.requestLogger.Handle)

	return r.router
}

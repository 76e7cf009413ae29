package venue

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/showtimehq/showtime/internal/core/reference"
	"github.com/showtimehq/showtime/internal/platform/ctxutil"
	requestutil "github.com/showtimehq/showtime/internal/platform/request"
	"github.com/showtimehq/showtime/internal/platform/respond"
)

// User-facing notice texts surfaced in the response message field.
const (
	noticeQueryFailed = "An error occurred!"
	noticeDeleted     = "Venue deleted successfully!"
	noticeEdited      = "Venue info edited successfully!"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listAreas)
	router.Post("/search", handler.search)
	router.Get("/create", handler.createForm)
	router.Post("/create", handler.create)
	router.Get("/{id}", handler.detail)
	router.Delete("/{id}", handler.delete)
	router.Get("/{id}/edit", handler.editForm)
	router.Post("/{id}/edit", handler.edit)

	return router
}

// formPayload is the definition served by the GET create/edit endpoints:
// the valid enumerations plus, on edit, the current record values.
type formPayload struct {
	Options reference.FormOptions `json:"options"`
	Values  *Venue                `json:"values,omitempty"`
}

func (handler *Handler) listAreas(writer http.ResponseWriter, request *http.Request) {
	areas, err := handler.service.ListAreas(request.Context())
	if err != nil {
		// Grouped-listing failures degrade to an empty page with a notice;
		// the request itself still completes.
		ctxutil.GetLogger(request.Context()).Error("venue_area_listing_failed", slog.Any("error", err))
		respond.OKNotice(writer, []Area{}, noticeQueryFailed)
		return
	}
	respond.OK(writer, areas)
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	term := requestutil.FormValue(request, "search_term")

	results, err := handler.service.Search(request.Context(), term)
	if err != nil {
		ctxutil.GetLogger(request.Context()).Error("venue_search_failed", slog.Any("error", err))
		respond.OKNotice(writer, results, noticeQueryFailed)
		return
	}
	respond.OK(writer, results)
}

func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetDetail(request.Context(), venueID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, formPayload{Options: reference.Options()})
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	input := venueFromForm(request)

	if err := handler.service.Create(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input, "Venue "+input.Name+" was successfully listed!")
}

func (handler *Handler) editForm(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.Get(request.Context(), venueID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, formPayload{Options: reference.Options(), Values: current})
}

func (handler *Handler) edit(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := venueFromForm(request)
	if err := handler.service.Update(request.Context(), venueID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OKNotice(writer, input, noticeEdited)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), venueID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OKNotice(writer, nil, noticeDeleted)
}

// venueFromForm maps the submitted form fields onto a venue record.
func venueFromForm(request *http.Request) *Venue {
	return &Venue{
		Name:               requestutil.FormValue(request, FieldName),
		City:               requestutil.FormValue(request, FieldCity),
		State:              requestutil.FormValue(request, FieldState),
		Address:            requestutil.FormValue(request, FieldAddress),
		Phone:              requestutil.FormValue(request, FieldPhone),
		Genres:             requestutil.FormValues(request, FieldGenres),
		ImageLink:          requestutil.FormValue(request, FieldImageLink),
		FacebookLink:       requestutil.FormValue(request, FieldFacebookLink),
		WebsiteLink:        requestutil.FormValue(request, FieldWebsiteLink),
		SeekingTalent:      requestutil.FormBool(request, "seeking_talent"),
		SeekingDescription: requestutil.FormValue(request, "seeking_description"),
	}
}

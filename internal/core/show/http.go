package show

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/showtimehq/showtime/internal/platform/apperr"
	"github.com/showtimehq/showtime/internal/platform/ctxutil"
	requestutil "github.com/showtimehq/showtime/internal/platform/request"
	"github.com/showtimehq/showtime/internal/platform/respond"
)

const noticeQueryFailed = "An error occurred!"

// startTimeLayouts are accepted in order; the second matches the
// browser-style "YYYY-MM-DD HH:MM:SS" submission.
var startTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05"}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/create", handler.createForm)
	router.Post("/create", handler.create)

	return router
}

// formPayload is the definition served by the GET create endpoint. A show
// form has no enumerated options, only its expected field names.
type formPayload struct {
	Fields []string `json:"fields"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	rows, err := handler.service.List(request.Context())
	if err != nil {
		ctxutil.GetLogger(request.Context()).Error("show_listing_failed", slog.Any("error", err))
		respond.OKNotice(writer, []ListingRow{}, noticeQueryFailed)
		return
	}
	respond.OK(writer, rows)
}

func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, formPayload{Fields: []string{FieldArtistID, FieldVenueID, FieldStartTime}})
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	input, err := showFromForm(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artistName, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	notice := "Show was successfully listed!"
	if artistName != "" {
		notice = "Show for " + artistName + " was successfully listed!"
	}
	respond.Created(writer, input, notice)
}

// showFromForm maps the submitted form fields onto a show record. An
// unparsable start time surfaces as a field-level validation error.
func showFromForm(request *http.Request) (*Show, error) {
	venueID, _ := requestutil.FormInt(request, FieldVenueID)
	artistID, _ := requestutil.FormInt(request, FieldArtistID)

	raw := requestutil.FormValue(request, FieldStartTime)
	start, ok := parseStartTime(raw)
	if raw != "" && !ok {
		return nil, apperr.ValidationError("Validation failed",
			apperr.FieldError{Field: FieldStartTime, Message: "Must be a valid timestamp"})
	}

	return &Show{VenueID: venueID, ArtistID: artistID, StartTime: start}, nil
}

func parseStartTime(raw string) (time.Time, bool) {
	for _, layout := range startTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

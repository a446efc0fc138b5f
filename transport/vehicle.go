package transport

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/gg-motors/constant"
	"github.com/muhammadheryan/gg-motors/model"
	utilsContext "github.com/muhammadheryan/gg-motors/utils/context"
	"github.com/muhammadheryan/gg-motors/utils/errors"
)

const maxPageSize = 100

// ListVehicles handler
// @Summary List vehicles
// @Description Newest first. Filters are exact except location, which is a case-insensitive substring.
// @Tags Vehicles
// @Produce json
// @Param category query string false "Category"
// @Param brand query string false "Brand"
// @Param location query string false "Location substring"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param page query int false "Page, starting at 1"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {array} model.VehicleDetail
// @Failure 400 {object} ErrorResponse
// @Router /api/vehicles [get]
func (s *RestHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	filter, err := parseVehicleFilter(r.URL.Query())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := s.VehicleApp.ListVehicles(r.Context(), filter)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if res == nil {
		res = []model.VehicleDetail{}
	}

	writeSuccess(w, res)
}

// GetVehicle handler
// @Summary Get vehicle
// @Tags Vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} model.VehicleDetail
// @Failure 404 {object} ErrorResponse
// @Router /api/vehicles/{id} [get]
func (s *RestHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	res, err := s.VehicleApp.GetVehicle(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeSuccess(w, res)
}

// CreateVehicle handler
// @Summary Create vehicle
// @Description Multipart form with the vehicle fields and up to 10 files in "images". The seller is the caller.
// @Tags Vehicles
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param brand formData string true "Brand"
// @Param model formData string true "Model"
// @Param price formData number true "Price"
// @Param year formData int false "Year"
// @Param mileage formData int false "Mileage"
// @Param images formData file false "Images"
// @Success 201 {object} model.Vehicle
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/vehicles [post]
func (s *RestHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.limits.bodyLimit())
	form, images, err := parseVehicleForm(r, s.limits)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := s.VehicleApp.CreateVehicle(r.Context(), identity, form, images)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeCreated(w, res)
}

// UpdateVehicle handler
// @Summary Update vehicle
// @Description Partial update; only the seller or an admin may update.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param request body model.UpdateVehicleRequest true "Fields to change"
// @Success 200 {object} model.Vehicle
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vehicles/{id} [put]
func (s *RestHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateVehicleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := s.VehicleApp.UpdateVehicle(r.Context(), identity, mux.Vars(r)["id"], &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteVehicle handler
// @Summary Delete vehicle
// @Tags Vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} model.DeleteVehicleResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vehicles/{id} [delete]
func (s *RestHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.VehicleApp.DeleteVehicle(r.Context(), identity, mux.Vars(r)["id"]); err != nil {
		s.fail(w, r, err)
		return
	}

	writeSuccess(w, model.DeleteVehicleResponse{Message: "Vehicle deleted successfully"})
}

func parseVehicleFilter(q url.Values) (*model.VehicleFilter, error) {
	filter := &model.VehicleFilter{
		Category: strings.TrimSpace(q.Get("category")),
		Brand:    strings.TrimSpace(q.Get("brand")),
		Location: strings.TrimSpace(q.Get("location")),
	}

	var errs []errors.FieldError
	parsePrice := func(key string) *float64 {
		raw := strings.TrimSpace(q.Get(key))
		if raw == "" {
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = append(errs, errors.FieldError{Field: key, Message: key + " must be a number"})
			return nil
		}
		return &v
	}
	parsePositive := func(key string) int {
		raw := strings.TrimSpace(q.Get(key))
		if raw == "" {
			return 0
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			errs = append(errs, errors.FieldError{Field: key, Message: key + " must be a positive integer"})
			return 0
		}
		return v
	}

	filter.MinPrice = parsePrice("minPrice")
	filter.MaxPrice = parsePrice("maxPrice")
	filter.Page = parsePositive("page")
	filter.Limit = parsePositive("limit")

	if len(errs) > 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest).WithDetails(errs...)
	}

	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Page > 0 && filter.Limit == 0 {
		filter.Limit = maxPageSize
	}
	return filter, nil
}

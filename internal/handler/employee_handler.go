package handler

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hr-records/internal/model"
	"hr-records/internal/service"
	"hr-records/internal/validate"
	"hr-records/pkg/apierror"
)

const profileImageField = "profile_image"

// EmployeeService is the slice of the employee service the handlers consume.
type EmployeeService interface {
	List(ctx context.Context) ([]model.EmployeeView, error)
	Search(ctx context.Context, department string, position string) ([]model.EmployeeView, error)
	Get(ctx context.Context, id string) (model.EmployeeView, error)
	Create(ctx context.Context, in model.EmployeeInput, up *service.Upload) (model.EmployeeView, error)
	Update(ctx context.Context, id string, in model.EmployeeInput, up *service.Upload) (model.EmployeeView, error)
	Delete(ctx context.Context, id string) error
}

type EmployeeHandler struct {
	service       EmployeeService
	maxUploadSize int64
}

func NewEmployeeHandler(service EmployeeService, maxUploadSize int64) *EmployeeHandler {
	return &EmployeeHandler{service: service, maxUploadSize: maxUploadSize}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Search(w http.ResponseWriter, r *http.Request) {
	department := strings.TrimSpace(r.URL.Query().Get("department"))
	position := strings.TrimSpace(r.URL.Query().Get("position"))

	employees, err := h.service.Search(r.Context(), department, position)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	eid := chi.URLParam(r, "eid")
	if errs := validate.Apply(validate.Values{"eid": eid}, validate.EmployeeID("eid")...); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	employee, err := h.service.Get(r.Context(), eid)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	values, upload, err := h.parseForm(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	if errs := validate.Apply(values, validate.EmployeeCreate()...); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	employee, err := h.service.Create(r.Context(), inputFrom(values), upload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.Response{
		Success:  true,
		Message:  "Employee created successfully.",
		Employee: &employee,
	})
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	eid := chi.URLParam(r, "eid")
	if errs := validate.Apply(validate.Values{"eid": eid}, validate.EmployeeID("eid")...); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	values, upload, err := h.parseForm(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	if errs := validate.Apply(values, validate.EmployeeUpdate()...); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	employee, err := h.service.Update(r.Context(), eid, inputFrom(values), upload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.Response{
		Success:  true,
		Message:  "Employee details updated successfully.",
		Employee: &employee,
	})
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	eid := strings.TrimSpace(r.URL.Query().Get("eid"))
	if errs := validate.Apply(validate.Values{"eid": eid}, validate.EmployeeID("eid")...); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	if err := h.service.Delete(r.Context(), eid); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Employee deleted successfully.")
}

// parseForm reads the employee fields and optional profile image from a
// multipart (or url-encoded) body. Only fields the caller actually sent
// end up in the Values map, which is what partial updates rely on.
func (h *EmployeeHandler) parseForm(w http.ResponseWriter, r *http.Request) (validate.Values, *service.Upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
			return nil, nil, apierror.New("BAD_REQUEST", "invalid multipart body", http.StatusBadRequest)
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, nil, apierror.New("BAD_REQUEST", "invalid form body", http.StatusBadRequest)
		}
	}

	values := validate.Values{}
	for field, fieldValues := range r.Form {
		if len(fieldValues) > 0 {
			values[field] = fieldValues[0]
		}
	}
	if r.MultipartForm != nil {
		for field, fieldValues := range r.MultipartForm.Value {
			if len(fieldValues) > 0 {
				values[field] = fieldValues[0]
			}
		}
	}

	file, header, err := r.FormFile(profileImageField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return values, nil, nil
	}
	if err != nil {
		return nil, nil, apierror.New("BAD_REQUEST", "invalid profile_image upload", http.StatusBadRequest)
	}

	return values, &service.Upload{
		Reader:      file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

func inputFrom(values validate.Values) model.EmployeeInput {
	return model.EmployeeInput{
		FirstName:     field(values, "first_name"),
		LastName:      field(values, "last_name"),
		Email:         field(values, "email"),
		Position:      field(values, "position"),
		Department:    field(values, "department"),
		Salary:        field(values, "salary"),
		DateOfJoining: field(values, "date_of_joining"),
	}
}

func field(values validate.Values, name string) *string {
	if !values.Has(name) {
		return nil
	}
	v := values[name]
	return &v
}

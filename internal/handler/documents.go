package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/segyhp/travel-crm/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const maxDocumentBytes = 10 << 20

type DocumentHandler struct {
	service DocumentService
	logger  *logrus.Logger
}

func NewDocumentHandler(service DocumentService, logger *logrus.Logger) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /customers/{id}/documents
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	documents, err := h.service.List(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	response.Success(w, documents)
}

// Upload handles a multipart POST /customers/{id}/documents with a "file" part
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentBytes)
	if err := r.ParseMultipartForm(maxDocumentBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form", err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file part", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(w, "Unreadable file part", err)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}

	info, err := h.service.Upload(r.Context(), mux.Vars(r)["id"], name, header.Header.Get("Content-Type"), data)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	response.Created(w, info)
}

// Download handles GET /customers/{id}/documents/{name} and streams the file
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	obj, err := h.service.Download(r.Context(), vars["id"], vars["name"])
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(obj.Body)))
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(vars["name"]))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(obj.Body); err != nil {
		h.logger.WithError(err).Warn("failed to write document")
	}
}

// Delete handles DELETE /customers/{id}/documents/{name}
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.service.Delete(r.Context(), vars["id"], vars["name"]); err != nil {
		writeError(w, h.logger, err)
		return
	}

	response.NoContent(w)
}

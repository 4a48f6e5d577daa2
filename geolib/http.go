package geolib

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type httpHandler struct {
	chain *Chain
	batch *BatchLocator
}

func (h httpHandler) handleGetSelf(w http.ResponseWriter, req *http.Request) {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		h.sendError(w, err, "Cannot detect your IP address", 0)

		return
	}

	ip, err := ParseIP(host)
	if err != nil {
		h.sendError(w, err, "Address was detected incorrectly", 0)

		return
	}

	h.locate(w, req, ip)
}

func (h httpHandler) handleGetIP(w http.ResponseWriter, req *http.Request) {
	ip, err := ParseIP(chi.URLParam(req, "ip"))
	if err != nil {
		h.sendError(w, err, "Incorrect IP address", http.StatusBadRequest)

		return
	}

	h.locate(w, req, ip)
}

func (h httpHandler) locate(w http.ResponseWriter, req *http.Request, ip IP) {
	location, err := h.chain.Locate(req.Context(), ip)

	switch {
	case errors.Is(err, ErrLocationNotFound):
		h.sendError(w, err, "Cannot locate IP address", http.StatusNotFound)

		return
	case err != nil:
		h.sendError(w, err, "Cannot locate IP address", 0)

		return
	}

	response := struct {
		Result Location `json:"result"`
	}{
		Result: location,
	}

	h.encodeJSON(w, response)
}

func (h httpHandler) handleGetStats(w http.ResponseWriter, req *http.Request) {
	response := struct {
		Results []*UsageStats `json:"results"`
	}{
		Results: h.chain.Stats(),
	}

	h.encodeJSON(w, response)
}

func (h httpHandler) encodeJSON(w http.ResponseWriter, data interface{}) {
	encoder := json.NewEncoder(w)

	w.Header().Add("Content-Type", "application/json")
	encoder.SetEscapeHTML(false)
	encoder.Encode(data) // nolint: errcheck
}

func (h httpHandler) sendError(w http.ResponseWriter, err error, message string, statusCode int) {
	e := &httpError{
		message:    message,
		statusCode: statusCode,
		err:        err,
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode())
	json.NewEncoder(w).Encode(e) // nolint: errcheck
}

// NewHTTPHandler exposes a chain over HTTP:
//
//	GET /       locates a caller
//	GET /{ip}   locates a given address
//	GET /stats  returns usage stats of chain providers
//	POST /      locates a batch of addresses, {"ips": [...]}
func NewHTTPHandler(chain *Chain, batch *BatchLocator) http.Handler {
	handler := httpHandler{
		chain: chain,
		batch: batch,
	}
	router := chi.NewRouter()

	router.Get("/", handler.handleGetSelf)
	router.Get("/stats", handler.handleGetStats)
	router.Get("/{ip}", handler.handleGetIP)
	router.Post("/", handler.handlePost)

	return router
}

package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ssargent/tinyprs/pkg/codec"
	"github.com/ssargent/tinyprs/pkg/convert"
	"github.com/ssargent/tinyprs/pkg/preset"
)

// maxBodySize bounds uploaded records and documents
const maxBodySize = 1 << 20

// Server holds the API server state
type Server struct {
	codec     *codec.PresetCodec
	converter *convert.Converter
	archive   PresetArchive
	config    ServerConfig
	metrics   *Metrics
	logger    *zap.Logger
}

// NewServer creates a new API server. archive may be nil, in which case the
// archive endpoints are not routed.
func NewServer(c *codec.PresetCodec, conv *convert.Converter, archive PresetArchive,
	config ServerConfig, metrics *Metrics, logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Server{
		codec:     c,
		converter: conv,
		archive:   archive,
		config:    config,
		metrics:   metrics,
		logger:    logger,
	}
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	archive := "disabled"
	if s.archive != nil {
		archive = "enabled"
	}
	sendSuccess(w, map[string]string{"status": "healthy", "archive": archive})
}

// handleDefault godoc
//
//	@Summary		Default preset
//	@Description	Get the firmware default preset as a document
//	@Tags			presets
//	@Produce		json,yaml
//	@Param			format	query	string	false	"json or yaml"
//	@Success		200
//	@Router			/presets/default [get]
//	@Security		ApiKeyAuth
func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	format, err := responseFormat(r)
	if err != nil {
		sendFailure(w, err)
		return
	}
	doc, err := s.converter.RenderAs(preset.Default(), format)
	if err != nil {
		sendFailure(w, err)
		return
	}
	sendDocument(w, doc, contentType(format))
}

// handleDecode godoc
//
//	@Summary		Decode a preset
//	@Description	Decode a binary .prs record into a document
//	@Tags			presets
//	@Accept			octet-stream
//	@Produce		json,yaml
//	@Param			body	body	[]byte	true	"Preset record"
//	@Param			format	query	string	false	"json or yaml"
//	@Success		200
//	@Failure		400	{object}	APIResponse
//	@Failure		422	{object}	APIResponse
//	@Router			/presets/decode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	format, err := responseFormat(r)
	if err != nil {
		sendFailure(w, err)
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	doc, checksum, err := s.converter.ExportBytesAs(body, format)
	s.metrics.RecordPresetOperation("decode", err == nil, time.Since(start))
	if err != nil {
		s.logger.Debug("decode rejected", zap.Error(err))
		sendFailure(w, err)
		return
	}
	w.Header().Set("X-Preset-Checksum", hexChecksum(checksum))
	sendDocument(w, doc, contentType(format))
}

// handleEncode godoc
//
//	@Summary		Encode a preset
//	@Description	Merge a document into the default preset and encode it as a .prs record
//	@Tags			presets
//	@Accept			json,yaml
//	@Produce		octet-stream
//	@Param			body	body	object	true	"Preset document"
//	@Success		200
//	@Failure		400	{object}	APIResponse
//	@Failure		422	{object}	APIResponse
//	@Router			/presets/encode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	format, err := requestFormat(r)
	if err != nil {
		sendFailure(w, err)
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	data, rep, err := s.converter.ImportBytes(body, format)
	s.metrics.RecordPresetOperation("encode", err == nil, time.Since(start))
	if err != nil {
		s.logger.Debug("encode rejected", zap.Error(err))
		sendFailure(w, err)
		return
	}
	if len(rep.Ignored) > 0 {
		w.Header().Set("X-Preset-Ignored", strings.Join(rep.Ignored, ","))
	}
	w.Header().Set("X-Preset-Checksum", hexChecksum(codec.Checksum(data[:codec.ChecksumRange])))
	sendRecord(w, data, "preset.prs")
}

// handleVerify godoc
//
//	@Summary		Verify a preset
//	@Description	Compare the stored and computed checksum of a .prs record
//	@Tags			presets
//	@Accept			octet-stream
//	@Produce		json
//	@Param			body	body		[]byte	true	"Preset record"
//	@Success		200		{object}	VerifyResponse
//	@Failure		400		{object}	APIResponse
//	@Router			/presets/verify [post]
//	@Security		ApiKeyAuth
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	body, err := readBody(w, r)
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	v, err := s.codec.Verify(body)
	s.metrics.RecordPresetOperation("verify", err == nil, time.Since(start))
	if err != nil {
		sendFailure(w, err)
		return
	}
	sendSuccess(w, VerifyResponse{
		OK:       v.OK(),
		Stored:   hexChecksum(v.Stored),
		Computed: hexChecksum(v.Computed),
	})
}

// handleArchivePut godoc
//
//	@Summary		Archive a preset
//	@Description	Validate and store a .prs record
//	@Tags			archive
//	@Accept			octet-stream
//	@Produce		json
//	@Param			body	body		[]byte	true	"Preset record"
//	@Success		200		{object}	storage.Entry
//	@Failure		422		{object}	APIResponse
//	@Router			/archive [post]
//	@Security		ApiKeyAuth
func (s *Server) handleArchivePut(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	body, err := readBody(w, r)
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	entry, err := s.archive.Put(body)
	s.metrics.RecordPresetOperation("archive_put", err == nil, time.Since(start))
	if err != nil {
		sendFailure(w, err)
		return
	}
	s.logger.Info("archived preset", zap.String("id", entry.ID), zap.String("name", entry.Name))
	sendSuccess(w, entry)
}

// handleArchiveList godoc
//
//	@Summary		List archived presets
//	@Tags			archive
//	@Produce		json
//	@Success		200	{array}	storage.Entry
//	@Router			/archive [get]
//	@Security		ApiKeyAuth
func (s *Server) handleArchiveList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	entries, err := s.archive.List()
	s.metrics.RecordPresetOperation("archive_list", err == nil, time.Since(start))
	if err != nil {
		sendFailure(w, err)
		return
	}
	s.metrics.UpdateArchiveStats(len(entries))
	sendSuccess(w, entries)
}

// handleArchiveGet godoc
//
//	@Summary		Get an archived preset
//	@Description	Returns the raw record, or a document when format is given
//	@Tags			archive
//	@Produce		octet-stream,json,yaml
//	@Param			id		path	string	true	"Preset id"
//	@Param			format	query	string	false	"json or yaml"
//	@Success		200
//	@Failure		404	{object}	APIResponse
//	@Router			/archive/{id} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleArchiveGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	if r.URL.Query().Get("format") == "" {
		data, err := s.archive.Get(id)
		s.metrics.RecordPresetOperation("archive_get", err == nil, time.Since(start))
		if err != nil {
			sendFailure(w, err)
			return
		}
		sendRecord(w, data, id+".prs")
		return
	}

	format, err := responseFormat(r)
	if err != nil {
		sendFailure(w, err)
		return
	}
	p, err := s.archive.GetPreset(id)
	s.metrics.RecordPresetOperation("archive_get", err == nil, time.Since(start))
	if err != nil {
		sendFailure(w, err)
		return
	}
	doc, err := s.converter.RenderAs(p, format)
	if err != nil {
		sendFailure(w, err)
		return
	}
	sendDocument(w, doc, contentType(format))
}

// handleArchiveReplace godoc
//
//	@Summary		Replace an archived preset
//	@Tags			archive
//	@Accept			octet-stream
//	@Produce		json
//	@Param			id	path		string	true	"Preset id"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	APIResponse
//	@Failure		422	{object}	APIResponse
//	@Router			/archive/{id} [put]
//	@Security		ApiKeyAuth
func (s *Server) handleArchiveReplace(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")
	body, err := readBody(w, r)
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	err = s.archive.Replace(id, body)
	s.metrics.RecordPresetOperation("archive_replace", err == nil, time.Since(start))
	if err != nil {
		sendFailure(w, err)
		return
	}
	sendSuccess(w, map[string]string{"id": id, "status": "replaced"})
}

// handleArchiveDelete godoc
//
//	@Summary		Delete an archived preset
//	@Tags			archive
//	@Produce		json
//	@Param			id	path		string	true	"Preset id"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	APIResponse
//	@Router			/archive/{id} [delete]
//	@Security		ApiKeyAuth
func (s *Server) handleArchiveDelete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	err := s.archive.Delete(id)
	s.metrics.RecordPresetOperation("archive_delete", err == nil, time.Since(start))
	if err != nil {
		sendFailure(w, err)
		return
	}
	sendSuccess(w, map[string]string{"id": id, "status": "deleted"})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
}

// responseFormat picks the document format from ?format= or the Accept header
func responseFormat(r *http.Request) (convert.Format, error) {
	if f := r.URL.Query().Get("format"); f != "" {
		return convert.ParseFormat(f)
	}
	if strings.Contains(r.Header.Get("Accept"), "yaml") {
		return convert.FormatYAML, nil
	}
	return convert.FormatJSON, nil
}

// requestFormat picks the document format from ?format= or Content-Type
func requestFormat(r *http.Request) (convert.Format, error) {
	if f := r.URL.Query().Get("format"); f != "" {
		return convert.ParseFormat(f)
	}
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		return convert.FormatYAML, nil
	}
	return convert.FormatJSON, nil
}

func contentType(f convert.Format) string {
	if f == convert.FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

func hexChecksum(v uint32) string {
	return fmt.Sprintf("0x%08X", v)
}

package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/kurochkinivan/pdf_converter/internal/converter"
	"github.com/kurochkinivan/pdf_converter/internal/domain"
)

const (
	filesField      = "files"
	multipartMemory = 32 << 20

	msgNoFileProvided   = "No PDF file provided"
	msgConversionFailed = "CONVERSION_FAILED"
)

type ConvertHandler struct {
	log             *slog.Logger
	maxRequestBytes int64
	writeTimeout    time.Duration
	validator       Validator
	store           TempStore
	converter       Converter
	recorder        ConversionRecorder
}

func NewConvertHandler(
	log *slog.Logger,
	maxRequestBytes int64,
	writeTimeout time.Duration,
	validator Validator,
	store TempStore,
	converter Converter,
	recorder ConversionRecorder,
) *ConvertHandler {
	return &ConvertHandler{
		log:             log,
		maxRequestBytes: maxRequestBytes,
		writeTimeout:    writeTimeout,
		validator:       validator,
		store:           store,
		converter:       converter,
		recorder:        recorder,
	}
}

// convertedFile is one upload together with the artifact produced for it.
type convertedFile struct {
	upload   *domain.Upload
	artifact *domain.Artifact
	took     time.Duration
}

// ConvertToHTML converts the PDFs in the "files" field and streams back
// either the HTML document or, for several files, a ZIP holding all of them.
// Every temp file created for the request is removed before it returns.
func (h *ConvertHandler) ConvertToHTML(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := h.log.With(slog.String("request_id", middleware.GetReqID(ctx)))

	uploads, status, msg := h.receive(w, r)
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	if status != http.StatusOK {
		log.InfoContext(ctx, "request rejected", slog.Int("status", status), slog.String("error", msg))
		writeError(w, status, msg)
		return
	}
	defer closeUploads(uploads)

	if err := h.validator.Validate(uploads); err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			log.ErrorContext(ctx, "unexpected validation error", slog.String("err", err.Error()))
			writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}

		log.InfoContext(ctx, "validation failed",
			slog.String("reason", string(verr.Reason)),
			slog.String("filename", verr.Filename),
		)
		h.recordAll(ctx, uploads, domain.StatusRejected, string(verr.Reason), "")
		writeError(w, http.StatusBadRequest, string(verr.Reason))
		return
	}

	var owned []string
	defer func() { h.store.Release(owned...) }()

	artifact, converted, err := h.convert(ctx, uploads, &owned)
	if err != nil {
		log.ErrorContext(ctx, "conversion failed",
			slog.String("kind", "conversion_failed"),
			slog.Int("files_count", len(uploads)),
			slog.String("err", err.Error()),
		)
		h.recordAll(ctx, uploads, domain.StatusFailed, "", err.Error())
		writeError(w, http.StatusInternalServerError, msgConversionFailed)
		return
	}

	for _, c := range converted {
		h.recorder.Record(ctx, newConversion(c.upload, domain.StatusDone, "", "", c.artifact.Kind, c.took))
	}

	if err := h.respond(w, artifact); err != nil {
		log.WarnContext(ctx, "failed to stream artifact", slog.String("err", err.Error()))
		return
	}

	log.InfoContext(ctx, "conversion finished",
		slog.Int("files_count", len(uploads)),
		slog.String("kind", string(artifact.Kind)),
	)
}

// receive extracts the uploads from the multipart body. A status other than
// 200 means the request must be rejected with msg.
func (h *ConvertHandler) receive(w http.ResponseWriter, r *http.Request) ([]*domain.Upload, int, string) {
	if h.maxRequestBytes > 0 {
		if r.ContentLength > h.maxRequestBytes {
			return nil, http.StatusBadRequest, string(domain.ReasonFileTooLarge)
		}

		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, http.StatusBadRequest, string(domain.ReasonFileTooLarge)
		}

		return nil, http.StatusBadRequest, msgNoFileProvided
	}

	headers, ok := r.MultipartForm.File[filesField]
	if !ok {
		// An empty file input is sent as a part without a filename, which
		// ends up among the plain values.
		if _, ok := r.MultipartForm.Value[filesField]; ok {
			return []*domain.Upload{}, http.StatusOK, ""
		}

		return nil, http.StatusBadRequest, msgNoFileProvided
	}

	return openUploads(headers), http.StatusOK, ""
}

func openUploads(headers []*multipart.FileHeader) []*domain.Upload {
	uploads := make([]*domain.Upload, 0, len(headers))

	for _, fh := range headers {
		upload := &domain.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
		}

		f, err := fh.Open()
		if err != nil {
			upload.Err = err
		} else {
			upload.Body = f
		}

		uploads = append(uploads, upload)
	}

	return uploads
}

func closeUploads(uploads []*domain.Upload) {
	for _, upload := range uploads {
		if c, ok := upload.Body.(io.Closer); ok {
			_ = c.Close()
		}
	}
}

// convert stores and converts every upload in turn. Paths that must be
// released are appended to owned as soon as they are allocated.
func (h *ConvertHandler) convert(
	ctx context.Context,
	uploads []*domain.Upload,
	owned *[]string,
) (*domain.Artifact, []convertedFile, error) {
	converted := make([]convertedFile, 0, len(uploads))

	for _, upload := range uploads {
		start := time.Now()

		input, err := h.store.Save(ctx, upload)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to store %q: %w", upload.Filename, err)
		}

		job := &domain.ConversionJob{
			ID:         uuid.NewString(),
			InputPath:  input,
			OutputPath: h.store.Reserve(domain.ArtifactHTML.Extension()),
		}
		*owned = append(*owned, job.Paths()...)

		artifact, err := h.converter.Convert(ctx, job)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to convert %q: %w", upload.Filename, err)
		}

		h.store.Release(input)

		converted = append(converted, convertedFile{
			upload:   upload,
			artifact: artifact,
			took:     time.Since(start),
		})
	}

	if len(converted) == 1 {
		return converted[0].artifact, converted, nil
	}

	entries := make([]converter.ArchiveEntry, 0, len(converted))
	for _, c := range converted {
		entries = append(entries, converter.ArchiveEntry{Name: c.upload.Filename, Path: c.artifact.Path})
	}

	archive := h.store.Reserve(domain.ArtifactZIP.Extension())
	*owned = append(*owned, archive)

	if err := converter.Archive(archive, entries); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrConversionFailed, err)
	}

	return &domain.Artifact{Kind: domain.ArtifactZIP, Path: archive}, converted, nil
}

func (h *ConvertHandler) respond(w http.ResponseWriter, artifact *domain.Artifact) (err error) {
	// The server write deadline started with the request and may already be
	// spent on conversions; streaming gets a fresh window.
	if h.writeTimeout > 0 {
		err := http.NewResponseController(w).SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err != nil && !errors.Is(err, http.ErrNotSupported) {
			writeError(w, http.StatusInternalServerError, msgConversionFailed)
			return fmt.Errorf("failed to extend write deadline: %w", err)
		}
	}

	f, err := os.Open(artifact.Path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgConversionFailed)
		return fmt.Errorf("failed to open artifact: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	info, err := f.Stat()
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgConversionFailed)
		return fmt.Errorf("failed to stat artifact: %w", err)
	}

	header := w.Header()
	header.Set("Content-Type", artifact.Kind.ContentType())
	header.Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Kind.DownloadName()))
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "close")
	header.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}

	return nil
}

func (h *ConvertHandler) recordAll(
	ctx context.Context,
	uploads []*domain.Upload,
	status domain.Status,
	reason, errMsg string,
) {
	for _, upload := range uploads {
		h.recorder.Record(ctx, newConversion(upload, status, reason, errMsg, "", 0))
	}
}

func newConversion(
	upload *domain.Upload,
	status domain.Status,
	reason, errMsg string,
	kind domain.ArtifactKind,
	took time.Duration,
) *domain.Conversion {
	c := &domain.Conversion{
		ID:           uuid.NewString(),
		Status:       status,
		Reason:       reason,
		ErrorMessage: errMsg,
		ArtifactKind: kind,
		DurationMS:   took.Milliseconds(),
		CreatedAt:    time.Now().UTC(),
	}

	if upload != nil {
		c.Filename = upload.Filename
		c.Size = upload.Size
	}

	return c
}

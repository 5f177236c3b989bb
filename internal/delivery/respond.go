package delivery

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/chaitravc/AI-VOICE-AGENT/internal/apperr"
	"github.com/chaitravc/AI-VOICE-AGENT/internal/ports"
)

// runPipeline is the shared multipart → pipeline → JSON path of the audio
// endpoints. Only the pipeline function differs between them.
func (h *VoiceHandler) runPipeline(
	w http.ResponseWriter,
	r *http.Request,
	endpoint string,
	run func(context.Context, ports.Upload) (ports.PipelineResult, error),
) {
	up, closeUpload, err := uploadFromRequest(r)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid upload", Error: err})
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer closeUpload()

	res, err := run(r.Context(), up)
	if err != nil {
		h.fail(w, endpoint, err)
		return
	}
	writeJSON(w, res)
}

func uploadFromRequest(r *http.Request) (ports.Upload, func(), error) {
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		return ports.Upload{}, nil, err
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return ports.Upload{}, nil, err
	}
	up := ports.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        file,
	}
	return up, func() { file.Close() }, nil
}

// fail maps a pipeline error to the uniform JSON error envelope. Validation
// failures are the caller's fault; everything else is a generic server-side
// failure carrying the originating error's message.
func (h *VoiceHandler) fail(w http.ResponseWriter, endpoint string, err error) {
	op := apperr.OpOf(err)
	if op == "" {
		op = endpoint
	}
	h.log.Log(logger.LogEntry{Level: "error", Message: endpoint + " failed: " + op, Error: err})

	status := http.StatusInternalServerError
	if apperr.KindOf(err) == apperr.KindValidation {
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": err.Error()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

package rest

import (
	"bytes"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/heartmarshall/studio-backend/internal/adapter/tabular"
	"github.com/heartmarshall/studio-backend/internal/domain"
)

const multipartMemory = 8 << 20

// formFiles opens every file posted under field. Call the returned func to
// close them once the service is done.
func formFiles(w http.ResponseWriter, r *http.Request, field string, maxBytes int64) ([]domain.Upload, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, func() {}, domain.NewValidationError(field, "上传文件过大")
		}
		return nil, func() {}, domain.NewValidationError(field, "请使用 multipart/form-data 上传文件")
	}

	var (
		uploads []domain.Upload
		opened  []multipart.File
	)
	closeAll := func() {
		for _, f := range opened {
			f.Close() //nolint:errcheck
		}
	}
	for _, fh := range r.MultipartForm.File[field] {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, domain.NewValidationError(field, "无法读取上传的文件")
		}
		opened = append(opened, f)
		uploads = append(uploads, domain.Upload{Name: fh.Filename, Body: f})
	}
	return uploads, closeAll, nil
}

// formFile opens the single file posted under field, or reports it missing.
func formFile(w http.ResponseWriter, r *http.Request, field string, maxBytes int64, missing string) (*domain.Upload, func(), error) {
	uploads, done, err := formFiles(w, r, field, maxBytes)
	if err != nil {
		return nil, done, err
	}
	if len(uploads) == 0 {
		return nil, done, domain.NewValidationError(field, missing)
	}
	return &uploads[0], done, nil
}

// writeTable renders t as a download.
func writeTable(w http.ResponseWriter, t tabular.Table, f tabular.Format, filename string) error {
	var buf bytes.Buffer
	if err := tabular.Write(&buf, f, t); err != nil {
		return err
	}
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(buf.Bytes())
	return err
}

func parseFormat(q *query) tabular.Format {
	f, err := tabular.ParseFormat(q.str("format"))
	if err != nil {
		q.fail("format", "仅支持 csv 或 xlsx 格式")
		return tabular.FormatCSV
	}
	return f
}

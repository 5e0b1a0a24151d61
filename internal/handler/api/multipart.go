package api

import (
	"io"
	"mime/multipart"
	"regexp"
	"strconv"
	"strings"

	"ifuut-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var quadraImagesField = regexp.MustCompile(`^quadra_(\d+)_images$`)

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), binding.MIMEMultipartPOSTForm)
}

// bindBody binds JSON or multipart form bodies into req.
func bindBody(c *gin.Context, req any) error {
	if isMultipart(c) {
		return c.ShouldBindWith(req, binding.FormMultipart)
	}
	return c.ShouldBindJSON(req)
}

func uploadFrom(fh *multipart.FileHeader) shared.Upload {
	return shared.Upload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func uploadsFrom(fhs []*multipart.FileHeader) []shared.Upload {
	out := make([]shared.Upload, 0, len(fhs))
	for _, fh := range fhs {
		out = append(out, uploadFrom(fh))
	}
	return out
}

// formFile returns the single upload sent under field, if any.
func formFile(c *gin.Context, field string) *shared.Upload {
	if !isMultipart(c) {
		return nil
	}
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	u := uploadFrom(fh)
	return &u
}

// subVenueUploads collects the quadra_<index>_images fields of a multipart form.
func subVenueUploads(form *multipart.Form) map[int][]shared.Upload {
	out := map[int][]shared.Upload{}
	for field, fhs := range form.File {
		m := quadraImagesField.FindStringSubmatch(field)
		if m == nil {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out[idx] = append(out[idx], uploadsFrom(fhs)...)
	}
	return out
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

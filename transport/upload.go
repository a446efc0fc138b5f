package transport

import (
	stderrors "errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/muhammadheryan/gg-motors/constant"
	"github.com/muhammadheryan/gg-motors/model"
	"github.com/muhammadheryan/gg-motors/utils/errors"
)

// maxFieldSize bounds a single text field of the create form.
const maxFieldSize = 1 << 20

type uploadLimits struct {
	maxFileSize int64
	maxFiles    int
}

// bodyLimit is the largest request body accepted for a create request.
func (l uploadLimits) bodyLimit() int64 {
	return int64(l.maxFiles)*l.maxFileSize + 2<<20
}

// parseVehicleForm streams a multipart create request. Every file is checked
// against the limits and the image type before anything is stored, so a
// rejected request leaves no file behind.
func parseVehicleForm(r *http.Request, limits uploadLimits) (*model.VehicleForm, []model.ImageUpload, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, nil, errors.SetCustomError(constant.ErrInvalidRequest).WithCause(err)
	}

	form := &model.VehicleForm{}
	var images []model.ImageUpload
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, multipartError(err)
		}

		if part.FileName() == "" {
			value, err := readField(part)
			part.Close()
			if err != nil {
				return nil, nil, err
			}
			form.SetField(part.FormName(), value)
			continue
		}

		img, err := readImage(part, len(images), limits)
		part.Close()
		if err != nil {
			return nil, nil, err
		}
		images = append(images, img)
	}

	return form, images, nil
}

func readField(part *multipart.Part) (string, error) {
	data, err := io.ReadAll(io.LimitReader(part, maxFieldSize+1))
	if err != nil {
		return "", multipartError(err)
	}
	if len(data) > maxFieldSize {
		return "", errors.SetCustomError(constant.ErrInvalidRequest).WithDetails(errors.FieldError{
			Field:   part.FormName(),
			Message: part.FormName() + " is too long",
		})
	}
	return string(data), nil
}

func readImage(part *multipart.Part, received int, limits uploadLimits) (model.ImageUpload, error) {
	if part.FormName() != constant.ImageFieldName {
		return model.ImageUpload{}, errors.SetCustomError(constant.ErrUnexpectedFile)
	}
	if received >= limits.maxFiles {
		return model.ImageUpload{}, errors.SetCustomError(constant.ErrTooManyFiles)
	}

	data, err := io.ReadAll(io.LimitReader(part, limits.maxFileSize+1))
	if err != nil {
		return model.ImageUpload{}, multipartError(err)
	}
	if int64(len(data)) > limits.maxFileSize {
		return model.ImageUpload{}, errors.SetCustomError(constant.ErrFileTooLarge)
	}

	contentType := strings.ToLower(strings.TrimSpace(part.Header.Get("Content-Type")))
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return model.ImageUpload{}, errors.SetCustomError(constant.ErrUnsupportedMedia)
	}

	return model.ImageUpload{
		FileName:    part.FileName(),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func multipartError(err error) error {
	var maxBytes *http.MaxBytesError
	if stderrors.As(err, &maxBytes) {
		return errors.SetCustomError(constant.ErrFileTooLarge)
	}
	return errors.SetCustomError(constant.ErrInvalidRequest).WithCause(err)
}

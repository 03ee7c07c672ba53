package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/saffco/skincare-backend/internal/application"
	"github.com/saffco/skincare-backend/pkg/response"
)

type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

// profileBody accepts the current field names and the legacy form names
// (no_telepon, alamat) sent by older front-ends.
type profileBody struct {
	Email     *string `json:"email" form:"email"`
	Phone     *string `json:"phone" form:"phone"`
	NoTelepon *string `json:"no_telepon" form:"no_telepon"`
	Address   *string `json:"address" form:"address"`
	Alamat    *string `json:"alamat" form:"alamat"`
}

func (b profileBody) fields() application.ProfileFields {
	f := application.ProfileFields{Email: b.Email, Phone: b.Phone, Address: b.Address}
	if f.Phone == nil {
		f.Phone = b.NoTelepon
	}
	if f.Address == nil {
		f.Address = b.Alamat
	}
	return f
}

// GetProfile GET /profile/:username
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.Svc.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "Profile retrieved successfully", nil)
}

// UpdateProfile PUT /profile/:username
// Fields come from the form when one is sent, otherwise from a JSON body.
// Every editable field is replaced: omitted ones are cleared.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var body profileBody
	if err := bindProfileBody(c, &body); err != nil {
		respondInvalidPayload(c, err)
		return
	}

	var upload *application.Upload
	fh, err := c.FormFile("file")
	switch {
	case err == nil:
		f, err := fh.Open()
		if err != nil {
			respondInvalidPayload(c, err)
			return
		}
		defer func() { _ = f.Close() }()
		upload = &application.Upload{Filename: fh.Filename, Body: f}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		respondInvalidPayload(c, err)
		return
	}

	avatar, err := h.Svc.UpdateProfile(c.Request.Context(), c.Param("username"), body.fields(), upload)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatar_url": avatar}, "Profile updated successfully", nil)
}

func bindProfileBody(c *gin.Context, body *profileBody) error {
	switch c.ContentType() {
	case binding.MIMEMultipartPOSTForm:
		return c.ShouldBindWith(body, binding.FormMultipart)
	case binding.MIMEPOSTForm:
		return c.ShouldBindWith(body, binding.FormPost)
	}
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	err := c.ShouldBindJSON(body)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

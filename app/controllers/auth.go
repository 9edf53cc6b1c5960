package controllers

import (
	"net/http"

	"github.com/dvxstudio/backend/internal/auth"
	"github.com/dvxstudio/backend/pkg/bind"
	"github.com/dvxstudio/backend/pkg/logger"
	"github.com/dvxstudio/backend/pkg/response"
)

type AuthController struct {
	gate *auth.Gate
}

func NewAuthController(gate *auth.Gate) *AuthController {
	return &AuthController{gate: gate}
}

// Authenticate serves both GET and POST /api/admin/auth. GET takes the
// password from the "pass" query parameter, POST from the JSON body.
func (c *AuthController) Authenticate(w http.ResponseWriter, r *http.Request) {
	var password string
	if r.Method == http.MethodGet {
		password = r.URL.Query().Get("pass")
	} else {
		var body struct {
			Password string `json:"password"`
		}
		if err := bind.JSON(r, &body); err != nil {
			response.Err(w, http.StatusBadRequest, err.Error())
			return
		}
		password = body.Password
	}

	token, err := c.gate.Authenticate(password)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("admin auth rejected", "ip", r.RemoteAddr)
		response.JSON(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	response.OK(w, map[string]any{
		"success": true,
		"token":   token,
		"message": "Авторизация успешна",
	})
}
